package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/1f349/cache"
	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/mrmelon54/exit-reload"
)

type serveCmd struct {
	Listen string `short:"l" help:"Address to listen on."`
}

type sortServer struct {
	logger *log.Logger

	confLock *sync.RWMutex
	conf     Config

	byKey *cache.Cache[string, Report]
	byID  *cache.Cache[uuid.UUID, Report]
}

func newSortServer(conf Config, logger *log.Logger) *sortServer {
	return &sortServer{
		logger:   logger,
		confLock: &sync.RWMutex{},
		conf:     conf,
		byKey:    cache.New[string, Report](),
		byID:     cache.New[uuid.UUID, Report](),
	}
}

func (s *sortServer) config() Config {
	s.confLock.RLock()
	defer s.confLock.RUnlock()
	return s.conf
}

func (s *sortServer) setConfig(conf Config) {
	s.confLock.Lock()
	s.conf = conf
	s.confLock.Unlock()
}

func (s *sortServer) router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/sort/:items", s.handleSort)
	router.GET("/runs/:id", s.handleRun)
	return router
}

func (s *sortServer) handleSort(rw http.ResponseWriter, req *http.Request, params httprouter.Params) {
	conf := s.config()

	items, err := parseItemCount(params.ByName("items"))
	if err != nil {
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}

	opts := RunOptions{
		Shuffle:  conf.Shuffle,
		MaxItems: conf.Server.MaxItems,
		Count:    true,
	}
	if m := req.FormValue("shuffle"); m != "" {
		opts.Shuffle = bubble.ShuffleMode(m)
	}

	var key string
	if seedStr := req.FormValue("seed"); seedStr != "" {
		opts.Seed, err = strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			http.Error(rw, fmt.Sprintf("%s: seed '%s' is not an integer", bubble.ErrInvalidInput, seedStr), http.StatusBadRequest)
			return
		}
		key = fmt.Sprintf("%d/%d/%s", items, opts.Seed, opts.Shuffle)
	} else {
		opts.Seed = time.Now().UnixNano()
	}

	var report Report
	var ok bool
	if key != "" {
		report, ok = s.byKey.Get(key)
	}
	if !ok {
		report, err = runSort(items, opts)
		switch {
		case errors.Is(err, bubble.ErrInvalidSize), errors.Is(err, bubble.ErrUnknownShuffle):
			http.Error(rw, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			s.logger.Error("Sort failed", "items", items, "err", err)
			http.Error(rw, "Failed to sort", http.StatusInternalServerError)
			return
		}
		s.logger.Info("Sorted", "id", report.ID, "items", items, "seconds", report.Seconds)
		expires := time.Now().Add(conf.Server.CacheTtl)
		if key != "" {
			s.byKey.Set(key, report, expires)
			s.byID.Set(report.ID, report, expires)
		} else {
			// unseeded values can't be asked for again, only the timing is kept
			stored := report
			stored.Values = nil
			s.byID.Set(report.ID, stored, expires)
		}
	}

	writeReport(rw, report, req.FormValue("values") == "true")
}

func (s *sortServer) handleRun(rw http.ResponseWriter, req *http.Request, params httprouter.Params) {
	id, err := uuid.Parse(params.ByName("id"))
	if err != nil {
		http.Error(rw, "Invalid run id", http.StatusBadRequest)
		return
	}
	report, ok := s.byID.Get(id)
	if !ok {
		http.Error(rw, "Run not found", http.StatusNotFound)
		return
	}
	writeReport(rw, report, req.FormValue("values") == "true")
}

func writeReport(rw http.ResponseWriter, report Report, values bool) {
	if !values {
		report.Values = nil
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(rw).Encode(report)
}

func (c *serveCmd) Run(conf Config, logger *log.Logger, flags *cli) error {
	if c.Listen != "" {
		conf.Server.Listen = c.Listen
	}
	srv := newSortServer(conf, logger)

	server := &http.Server{
		Handler: srv.router(),
		Addr:    conf.Server.Listen,
	}
	go func() {
		logger.Info("Listening for HTTP requests", "addr", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Listen and serve error", "err", err)
		}
	}()

	exit_reload.ExitReload("BubbleSort", func() {
		newConf, err := loadConfig(flags.Conf)
		if err != nil {
			logger.Error("Failed to reload config", "err", err)
			return
		}
		newConf.Server.Listen = conf.Server.Listen
		srv.setConfig(newConf)
		logger.Info("Reloaded config")
	}, func() {
		_ = server.Close()
	})
	return nil
}
