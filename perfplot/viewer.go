package perfplot

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/russross/blackfriday/v2"
	"github.com/rs/zerolog/log"
)

// Viewer presents a finished figure.
type Viewer interface {
	Show(ctx context.Context, fig *Figure) error
}

// BrowserViewer serves the figure over HTTP on a local address and blocks
// until ctx is done.
type BrowserViewer struct {
	// Addr is the listen address. Defaults to "127.0.0.1:0".
	Addr string

	// OnReady, if set, is called with the page URL once the listener is up.
	OnReady func(url string)
}

func (v *BrowserViewer) Show(ctx context.Context, fig *Figure) error {
	handler, err := NewChartHandler(fig)
	if err != nil {
		return err
	}

	addr := v.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	url := "http://" + ln.Addr().String() + "/"
	log.Info().
		Str("url", url).
		Str("title", fig.Labels().Title).
		Int("points", fig.Points()).
		Msg("[viewer] chart available")
	if v.OnReady != nil {
		v.OnReady(url)
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve chart: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[viewer] http server shutdown error")
	}
	log.Debug().Msg("[viewer] closed")
	return nil
}

// NewChartHandler renders fig once and returns a router serving it:
//
//	GET /           HTML page with the chart and its summary
//	GET /chart.svg  the chart itself
//	GET /healthz    liveness
func NewChartHandler(fig *Figure) (http.Handler, error) {
	svg, err := fig.SVG()
	if err != nil {
		return nil, err
	}
	summary := template.HTML(blackfriday.Run([]byte(fig.Summary())))

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := chartPageTmpl.Execute(w, chartPage{
			Title:   fig.Labels().Title,
			Summary: summary,
		})
		if err != nil {
			log.Error().Err(err).Msg("[viewer] render page")
		}
	})
	r.Get("/chart.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := w.Write(svg); err != nil {
			log.Debug().Err(err).Msg("[viewer] write svg")
		}
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r, nil
}

type chartPage struct {
	Title   string
	Summary template.HTML
}

var chartPageTmpl = template.Must(template.New("chart").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 24px; color: #0f172a; background: #fafbff }
    .chart { background: #fff; border: 1px solid #e9eef5; border-radius: 8px; padding: 12px; max-width: 960px }
    .chart img { width: 100%; height: auto }
    .summary { margin-top: 16px; max-width: 960px }
    .summary table { border-collapse: collapse }
    .summary td, .summary th { border: 1px solid #e9eef5; padding: 4px 10px; text-align: left }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="chart"><img src="chart.svg" alt="{{.Title}}"/></div>
  <div class="summary">{{.Summary}}</div>
</body>
</html>
`))
