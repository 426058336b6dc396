package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/live"
)

// Entry is the body returned for a single path.
type Entry struct {
	Path  string       `json:"path"`
	Value config.Value `json:"value"`
}

type errorBody struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

type handler struct {
	holder *live.Holder
	logger *slog.Logger
}

// NewHandler returns the inspection routes served from holder.
func NewHandler(holder *live.Holder, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{holder: holder, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /config", h.tree)
	mux.HandleFunc("GET /config/{path...}", h.get)
	mux.HandleFunc("HEAD /config/{path...}", h.exist)
	mux.HandleFunc("POST /reload", h.reload)

	return mux
}

func (h *handler) tree(w http.ResponseWriter, _ *http.Request) {
	var root config.Value

	h.holder.Read(func(store *config.Store) {
		root = store.Root()
	})

	h.writeJSON(w, http.StatusOK, root)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	var (
		path  string
		value config.Value
		found bool
	)

	h.holder.Read(func(store *config.Store) {
		path = storePath(store, r.PathValue("path"))
		value, found = store.Node(path)
	})

	if !found {
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: config.ErrPathNotFound.Error(), Path: path})

		return
	}

	h.writeJSON(w, http.StatusOK, Entry{Path: path, Value: value})
}

func (h *handler) exist(w http.ResponseWriter, r *http.Request) {
	var found bool

	h.holder.Read(func(store *config.Store) {
		found = store.Exist(storePath(store, r.PathValue("path")))
	})

	if !found {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *handler) reload(w http.ResponseWriter, _ *http.Request) {
	err := h.holder.Reload()
	if err != nil {
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("encoding response failed", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, _ = w.Write(append(data, '\n'))
}

func storePath(store *config.Store, urlPath string) string {
	return store.Join(strings.Split(strings.Trim(urlPath, "/"), "/")...)
}
