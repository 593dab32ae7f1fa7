package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	minSize = 16
	maxSize = 2000
)

// Server serves rendered frames over HTTP
type Server struct {
	port     int
	meshPath string
}

// NewServer creates a new web server. meshPath is used by the "mesh" scene.
func NewServer(port int, meshPath string) *Server {
	return &Server{port: port, meshPath: meshPath}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string                // Scene name (e.g., "spheres")
	Width   int                   // Image width
	Height  int                   // Image height
	Mode    renderer.LightingMode // Lighting term to show
	Shadows bool                  // Trace shadow rays
	Time    float64               // Mesh animation time in seconds
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API endpoints only; there is no bundled front end
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	core.Logger().Info("starting web server", "url", "http://localhost"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(scene.List())
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	world, err := scene.Create(req.Scene, scene.Options{MeshPath: s.meshPath, Time: req.Time})
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.Mode = req.Mode
	config.Shadows = req.Shadows

	startTime := time.Now()
	img, stats := renderer.NewRenderer(world, config).Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "spheres", Mode: renderer.Combined}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(query, "time", 0, 0, 1e6); err != nil {
		return nil, err
	}
	if mode := query.Get("mode"); mode != "" {
		if req.Mode, err = renderer.ParseLightingMode(mode); err != nil {
			return nil, err
		}
	}
	if req.Shadows, err = parseBoolParam(query, "shadows", true); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 1280*720 && req.Shadows {
		core.Logger().Warn("large render with shadows may be slow", "width", req.Width, "height", req.Height)
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleSceneConfig returns the render defaults and parameter limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	defaults := renderer.DefaultConfig()
	modes := []string{}
	for m := renderer.ObservedArea; ; m = m.Next() {
		modes = append(modes, m.String())
		if m.Next() == renderer.ObservedArea {
			break
		}
	}

	response := map[string]interface{}{
		"scenes": scene.Names(),
		"modes":  modes,
		"defaults": map[string]interface{}{
			"width":   defaults.Width,
			"height":  defaults.Height,
			"mode":    defaults.Mode.String(),
			"shadows": defaults.Shadows,
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minSize, "max": maxSize},
			"height": map[string]int{"min": minSize, "max": maxSize},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// writeJSONError writes an error response
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
