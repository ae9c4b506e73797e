package parseserv

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/navionguy/vb6parse/cst"
	"github.com/navionguy/vb6parse/project"
	"github.com/navionguy/vb6parse/vb6diag"
)

// parseRequest is the body both endpoints accept.
type parseRequest struct {
	FileName string `json:"file_name"`
	Source   string `json:"source"`
}

// apiDiagnostic is the wire shape of one diagnostic.
type apiDiagnostic struct {
	Code     int    `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type treeResponse struct {
	Tree        cst.JSONNode    `json:"tree"`
	Diagnostics []apiDiagnostic `json:"diagnostics"`
}

type projectResponse struct {
	Project     *project.Project `json:"project"`
	Diagnostics []apiDiagnostic  `json:"diagnostics"`
}

// AddRoutes wires the parse endpoints onto the router.
func AddRoutes(rtr *mux.Router) {
	rtr.HandleFunc("/api/tree", handleTree).Methods(http.MethodPost)
	rtr.HandleFunc("/api/project", handleProject).Methods(http.MethodPost)
	rtr.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
}

// ListenAndServe runs the parse service until the listener dies.
func ListenAndServe(addr string) error {
	rtr := mux.NewRouter()
	AddRoutes(rtr)
	log.Printf("parse service listening on %s", addr)
	return http.ListenAndServe(addr, rtr)
}

func handleTree(rw http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(rw, r)
	if !ok {
		return
	}

	tree, diags := cst.Parse(req.Source, req.FileName)
	sendJSON(rw, treeResponse{
		Tree:        tree.ToJSON(),
		Diagnostics: wireDiagnostics(diags),
	})
}

func handleProject(rw http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(rw, r)
	if !ok {
		return
	}

	proj, diags := project.ParseText(req.FileName, req.Source)
	sendJSON(rw, projectResponse{
		Project:     proj,
		Diagnostics: wireDiagnostics(diags),
	})
}

func handleHealth(rw http.ResponseWriter, r *http.Request) {
	rw.WriteHeader(http.StatusOK)
	rw.Write([]byte("ok"))
}

func decodeRequest(rw http.ResponseWriter, r *http.Request) (parseRequest, bool) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(rw, "bad request body", http.StatusBadRequest)
		return parseRequest{}, false
	}
	if req.FileName == "" {
		req.FileName = "input"
	}
	return req, true
}

func wireDiagnostics(diags []vb6diag.Diagnostic) []apiDiagnostic {
	out := make([]apiDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, apiDiagnostic{
			Code:     d.Code,
			Severity: d.Severity.String(),
			Message:  d.Message(),
			Start:    d.Span.Start,
			End:      d.Span.End,
		})
	}
	return out
}

func sendJSON(rw http.ResponseWriter, body interface{}) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
