package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"ai_content_generator/generator"
	"ai_content_generator/pages"
	"ai_content_generator/publisher"
	"ai_content_generator/settings"
)

//go:embed web/index.html
var embeddedStatic embed.FS

const defaultGenerateTimeout = 60 * time.Second

// Server is the navigation shell: it mounts pages and routes user actions to them.
type Server struct {
	settingsPage *pages.SettingsPage
	outline      *pages.OutlinePage
	article      *pages.ArticlePage
	translator   *pages.TranslatorPage

	store    *activationStore
	timeout  time.Duration
	staticFS http.Handler
}

// Options tune the shell; zero values pick the defaults.
type Options struct {
	GenerateTimeout time.Duration
	MaxActivations  int
}

func New(deps pages.Deps, opts Options) (*Server, error) {
	if deps.Settings == nil || deps.Drafts == nil {
		return nil, errors.New("settings store and draft hub are required")
	}
	if deps.Provider == nil {
		return nil, errors.New("content provider is required")
	}
	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}
	timeout := opts.GenerateTimeout
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	return &Server{
		settingsPage: pages.NewSettingsPage(deps),
		outline:      pages.NewOutlinePage(deps),
		article:      pages.NewArticlePage(deps),
		translator:   pages.NewTranslatorPage(deps),
		store:        newStore(opts.MaxActivations),
		timeout:      timeout,
		staticFS:     http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/settings", s.handleSettingsGet)
	mux.HandleFunc("PUT /api/settings", s.handleSettingsSave)
	mux.HandleFunc("POST /api/settings", s.handleSettingsSave)
	mux.HandleFunc("GET /api/languages", s.handleLanguages)
	mux.HandleFunc("POST /api/pages/{page}/activations", s.handleActivate)
	mux.HandleFunc("GET /api/activations/{id}", s.handleRender)
	mux.HandleFunc("POST /api/activations/{id}/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/activations/{id}/transfer", s.handleTransfer)
	mux.HandleFunc("GET /api/activations/{id}/download", s.handleDownload)
	mux.Handle("GET /", s.staticHandler())
	return logMiddleware(mux)
}

// staticHandler serves the navigation page for every shell route.
func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case pages.RouteOutline, pages.RouteArticle, pages.RouteTranslator, pages.RouteSettings, "/index.html":
			r.URL.Path = "/"
			s.staticFS.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// --- Settings ---

type settingsResp struct {
	Settings      settings.Record `json:"settings"`
	HasCredential bool            `json:"has_credential"`
	Message       string          `json:"message,omitempty"`
}

func (s *Server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	rec := s.settingsPage.Activate(r.Context())
	writeJSON(w, http.StatusOK, settingsResp{Settings: rec.Redacted(), HasCredential: rec.HasCredential()})
}

func (s *Server) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	current := s.settingsPage.Activate(r.Context())
	rec := settings.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, pages.ValidationError(err.Error()))
		return
	}
	// the form echoes the masked key back when the user did not change it
	if current.HasCredential() && rec.Credential == settings.MaskCredential(current.Credential) {
		rec.Credential = current.Credential
	}
	msg, err := s.settingsPage.Save(r.Context(), rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResp{Settings: rec.Redacted(), HasCredential: rec.HasCredential(), Message: msg})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, generator.TranslationLanguages)
}

// --- Activations ---

type activationResp struct {
	ID                 string            `json:"activation_id"`
	Page               string            `json:"page"`
	HasCredential      bool              `json:"has_credential"`
	Settings           settings.Record   `json:"settings"`
	Topic              string            `json:"topic,omitempty"`
	Outline            string            `json:"outline,omitempty"`
	GeneratedOutline   string            `json:"generated_outline,omitempty"`
	TransferredArticle string            `json:"transferred_article,omitempty"`
	Article            *generator.Draft  `json:"article,omitempty"`
	Translations       map[string]string `json:"translations,omitempty"`
	Next               string            `json:"next,omitempty"`
}

type generateReq struct {
	Topic string `json:"topic"`
	pages.ArticleInput
	pages.TranslateInput
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	act, err := s.mount(r.Context(), r.PathValue("page"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.store.set(act)
	writeJSON(w, http.StatusCreated, s.render(r.Context(), act))
}

func (s *Server) mount(ctx context.Context, page string) (*activation, error) {
	act := &activation{id: newActivationID(), page: page, createdAt: time.Now()}
	switch page {
	case pageOutline:
		act.outline = s.outline.Activate(ctx)
	case pageArticle:
		act.article = s.article.Activate(ctx)
	case pageTranslator:
		act.translator = s.translator.Activate(ctx)
	default:
		return nil, notFoundError("unknown page " + page)
	}
	logrus.Debugf("[SERVER] mounted %s page activation=%s", page, act.id)
	return act, nil
}

// render never reads a draft channel itself; it only reports what the
// activation captured.
func (s *Server) render(ctx context.Context, act *activation) activationResp {
	resp := activationResp{ID: act.id, Page: act.page}
	var rec settings.Record
	switch act.page {
	case pageOutline:
		rec = act.outline.Settings()
		resp.Outline = act.outline.Outline()
	case pageArticle:
		rec = act.article.Settings()
		resp.GeneratedOutline = act.article.GeneratedOutline()
		if d, ok := act.article.Article(); ok {
			resp.Article = &d
		}
	case pageTranslator:
		rec = act.translator.Settings()
		resp.TransferredArticle, _ = act.translator.TransferredArticle(ctx)
		if res := act.translator.Results(); len(res) > 0 {
			resp.Translations = res
		}
	}
	resp.Settings = rec.Redacted()
	resp.HasCredential = rec.HasCredential()
	return resp
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*activation, bool) {
	act, ok := s.store.get(r.PathValue("id"))
	if !ok {
		writeError(w, notFoundError("activation not found"))
		return nil, false
	}
	return act, true
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	act, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.render(r.Context(), act))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	act, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pages.ValidationError(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	var err error
	switch act.page {
	case pageOutline:
		_, err = act.outline.Generate(ctx, req.Topic)
	case pageArticle:
		_, err = act.article.Generate(ctx, req.ArticleInput)
	case pageTranslator:
		_, err = act.translator.Translate(ctx, req.TranslateInput)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	resp := s.render(r.Context(), act)
	resp.Topic = req.Topic
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	act, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if act.page != pageArticle {
		writeError(w, pages.PreconditionError("only the article page can transfer"))
		return
	}
	next, err := act.article.TransferToTranslator(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	resp := s.render(r.Context(), act)
	resp.Next = next
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	act, ok := s.lookup(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	lang := r.URL.Query().Get("lang")

	var markdown string
	switch act.page {
	case pageArticle:
		d, ok := act.article.Article()
		if !ok {
			writeError(w, pages.ErrNoArticleGenerated)
			return
		}
		markdown, lang = d.Markdown, ""
	case pageTranslator:
		markdown = act.translator.Results()[lang]
		if markdown == "" {
			writeError(w, pages.PreconditionError("no translation for "+lang))
			return
		}
	default:
		writeError(w, pages.PreconditionError("nothing to download on the "+act.page+" page"))
		return
	}

	doc, err := publisher.Render(publisher.ArticleName(lang), markdown, format)
	if err != nil {
		writeError(w, pages.ValidationError(err.Error()))
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	_, _ = w.Write(doc.Body)
}

// --- Helpers ---

type notFoundError string

func (err notFoundError) Error() string   { return string(err) }
func (err notFoundError) ErrCode() string { return "NOT_FOUND_ERROR" }
func (err notFoundError) StatusCode() int { return http.StatusNotFound }

type codedError interface {
	error
	ErrCode() string
	StatusCode() int
}

type errorResp struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	var ce codedError
	if errors.As(err, &ce) {
		writeJSON(w, ce.StatusCode(), errorResp{Code: ce.ErrCode(), Error: ce.Error()})
		return
	}
	logrus.WithError(err).Error("[SERVER] request failed")
	writeJSON(w, http.StatusInternalServerError, errorResp{Code: "INTERNAL_ERROR", Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  rec.status,
			"elapsed": time.Since(start).String(),
		}).Info("[SERVER] request")
	})
}
