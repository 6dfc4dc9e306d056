package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"favicons/config"
	"favicons/favicon"
)

// Server serves the upload form and the generated archives
type Server struct {
	cfg        *config.Config
	generator  *favicon.Generator
	tmpl       *template.Template
	httpServer *http.Server
	mu         sync.RWMutex
}

// formPage is the data rendered into formTemplate
type formPage struct {
	Form   config.FormConfig
	Notice string
}

const noticeNoImage = "Nothing to download: no image was uploaded."

// NewServer creates a new favicon server
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:       cfg,
		generator: favicon.NewGenerator(),
		tmpl:      template.Must(template.New("form").Parse(formTemplate)),
	}
}

// SetConfig swaps the active configuration. Form, CORS, upload limit and
// scratch settings apply to the next request; the listen address is fixed
// once Start has run.
func (s *Server) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *Server) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Handler returns the routes wrapped in the CORS middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.cors(mux)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	cfg := s.config()

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	log.Printf("Favicon server starting on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops a started server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	srv := s.httpServer
	s.mu.RUnlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// cors answers preflight requests and tags every response with the
// configured origin
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.config().Server.AllowOrigin; origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleIndex shows the upload form
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, s.config(), "")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

// handleGenerate runs the pipeline on the uploaded image and sends the
// archive back as an attachment
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cfg := s.config()

	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(cfg.MaxUploadBytes()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	params := favicon.Params{
		Name:            r.FormValue("name"),
		ShortName:       r.FormValue("short_name"),
		ThemeColor:      r.FormValue("theme_color"),
		BackgroundColor: r.FormValue("background_color"),
		TileColor:       r.FormValue("tile_color"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || (err == nil && header.Size == 0) {
		if file != nil {
			file.Close()
		}
		log.Printf("Generate request without image, nothing to download")
		s.renderForm(w, cfg, noticeNoImage)
		return
	}
	if err != nil {
		http.Error(w, "could not read image: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, format, err := favicon.Decode(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.generator.Generate(img, params)
	if err != nil {
		log.Printf("Error generating favicons: %v", err)
		http.Error(w, "failed to generate favicons", http.StatusInternalServerError)
		return
	}
	if result == nil {
		s.renderForm(w, cfg, noticeNoImage)
		return
	}

	log.Printf("Generated %s: %d files from %s upload %q", result.Name, len(result.Files), format, header.Filename)

	err = WithScratchFile(cfg.Scratch.Dir, result.Name, result.WriteArchive, func(f *os.File) error {
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="`+result.Name+`"`)
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		http.ServeContent(w, r, result.Name, result.Created, f)
		return nil
	})
	if err != nil {
		log.Printf("Error serving %s: %v", result.Name, err)
		http.Error(w, "failed to prepare download", http.StatusInternalServerError)
	}
}

func (s *Server) renderForm(w http.ResponseWriter, cfg *config.Config, notice string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, formPage{Form: cfg.Form, Notice: notice}); err != nil {
		log.Printf("Error rendering form: %v", err)
	}
}

const formTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Form.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            max-width: 640px;
            margin: 40px auto;
            padding: 20px;
            line-height: 1.6;
        }
        .header {
            border-bottom: 2px solid #333;
            padding-bottom: 20px;
            margin-bottom: 30px;
        }
        label {
            display: block;
            margin-top: 15px;
            font-weight: 600;
        }
        input[type=text] { width: 100%; padding: 8px; }
        .notice {
            background: #fff4e5;
            border-left: 4px solid #ff9800;
            padding: 15px;
            margin: 20px 0;
            border-radius: 4px;
        }
        .button {
            margin-top: 30px;
            padding: 15px 40px;
            font-size: 18px;
            border: none;
            border-radius: 6px;
            cursor: pointer;
            font-weight: 600;
            background: #28a745;
            color: white;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Form.Title}}</h1>
        <p>Upload a high resolution image (1024px or larger) to get every favicon, touch icon and tile as one ZIP.</p>
    </div>

    {{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}

    <form action="/generate" method="post" enctype="multipart/form-data">
        <label for="image">Image</label>
        <input type="file" id="image" name="image" accept="image/*">

        <label for="name">App Name</label>
        <input type="text" id="name" name="name" placeholder="My App">

        <label for="short_name">Short Name</label>
        <input type="text" id="short_name" name="short_name" placeholder="App">

        <label for="theme_color">Theme Color</label>
        <input type="color" id="theme_color" name="theme_color" value="{{.Form.ThemeColor}}">

        <label for="background_color">Background Color</label>
        <input type="color" id="background_color" name="background_color" value="{{.Form.BackgroundColor}}">

        <label for="tile_color">Tile Color</label>
        <input type="color" id="tile_color" name="tile_color" value="{{.Form.TileColor}}">

        <button type="submit" class="button">Generate favicons</button>
    </form>
</body>
</html>
`
