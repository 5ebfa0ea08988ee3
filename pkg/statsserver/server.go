package statsserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/norasector/xclink/pkg/xclink"
)

// Provider returns per-source counters, typically a *xclink.Vehicle.
type Provider interface {
	Stats() []xclink.Stats
}

type Server struct {
	port     int
	provider Provider
	srv      *http.Server
}

func NewServer(port int, provider Provider) *Server {
	s := &Server{
		port:     port,
		provider: provider,
	}
	s.srv = &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: s.Handler()}
	return s
}

func (s *Server) Handler() http.Handler {
	handler := httprouter.New()
	handler.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Location", "/stats")
		w.WriteHeader(http.StatusFound)
	})

	handler.GET("/stats", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		writeJSON(w, s.provider.Stats())
	})

	handler.GET("/stats/:source", func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		name := params.ByName("source")
		for _, st := range s.provider.Stats() {
			if st.Name == name {
				writeJSON(w, st)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	return handler
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Run serves until Stop is called. Shutting down is not an error.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.srv.Close()
	}()

	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
