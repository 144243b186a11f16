package health

import (
	"net/http"

	"github.com/ccastromar/nvsum/internal/runtime"
)

func ReadyHandler(rt *runtime.Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !rt.PresetsLoaded {
			http.Error(w, "presets not loaded", 503)
			return
		}

		// Only ping when the environment configured a key; a session-entered
		// key cannot be checked here.
		if rt.LLMClient != nil {
			if err := rt.LLMClient.Ping(r.Context()); err != nil {
				http.Error(w, "completion endpoint unreachable", 503)
				return
			}
		}

		w.WriteHeader(200)
		w.Write([]byte(`{"status":"ready"}`))
	}
}
