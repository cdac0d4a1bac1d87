package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/RussellLuo/kun/pkg/httpcodec"
	"github.com/coseyo/jiebatag"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

type config struct {
	Addr      string
	Engine    string
	JiebaDir  string
	GseDict   []string
	Serialize bool
	LogLevel  string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadConfig() (*config, error) {
	serialize, err := strconv.ParseBool(getenv("TAGGER_SERIALIZE", "true"))
	if err != nil {
		return nil, fmt.Errorf("TAGGER_SERIALIZE: %w", err)
	}
	cfg := &config{
		Addr:      getenv("HTTP_ADDR", ":8080"),
		Engine:    getenv("TAGGER_ENGINE", "jieba"),
		JiebaDir:  os.Getenv("JIEBA_DICT_DIR"),
		Serialize: serialize,
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
	if v := os.Getenv("GSE_DICT"); v != "" {
		cfg.GseDict = strings.Split(v, ",")
	}
	switch cfg.Engine {
	case "jieba", "gse":
	default:
		return nil, fmt.Errorf("TAGGER_ENGINE: unknown engine %q", cfg.Engine)
	}
	return cfg, nil
}

func jiebaPaths(dir string) []string {
	if dir == "" {
		return nil
	}
	var paths []string
	for _, name := range []string{"jieba.dict.utf8", "hmm_model.utf8", "user.dict.utf8", "idf.utf8", "stop_words.utf8"} {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "err: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	svcCfg := &TagServiceConfig{}
	var tagger jiebatag.Tagger
	switch cfg.Engine {
	case "gse":
		g, err := jiebatag.NewGseTagger(cfg.GseDict...)
		if err != nil {
			level.Error(logger).Log("err", err)
			os.Exit(1)
		}
		tagger, svcCfg.Words = g, g.Words()
	default:
		jt := jiebatag.NewJiebaTagger(jiebaPaths(cfg.JiebaDir)...)
		defer jt.Free()
		tagger, svcCfg.Words = jt, jt.WithMode(jiebatag.ModeWords)
		svcCfg.Keywords = func(topK int) jiebatag.Tagger { return jt.WithTopK(topK) }
	}
	svcCfg.Adapter = jiebatag.NewAdapter(&jiebatag.AdapterConfig{
		Tagger:    tagger,
		Serialize: cfg.Serialize,
		Logger:    log.With(logger, "component", "adapter"),
	})

	var svc Service = NewTagService(svcCfg)
	svc = LoggingMiddleware(log.With(logger, "component", "service"))(svc)

	r := NewHTTPRouter(svc, httpcodec.NewDefaultCodecs(nil))

	errs := make(chan error, 2)
	go func() {
		level.Info(logger).Log("transport", "HTTP", "addr", cfg.Addr, "engine", cfg.Engine)
		errs <- http.ListenAndServe(cfg.Addr, r)
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	level.Info(logger).Log("msg", "terminated", "err", <-errs)
}
