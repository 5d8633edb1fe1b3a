package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/wreien/beeeees/pkg/client"
	"github.com/wreien/beeeees/pkg/log"
	"github.com/wreien/beeeees/pkg/strategy"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	name := flag.String("name", "", "player name (default \"player-<random>\")")
	host := flag.String("host", "127.0.0.1", "server host")
	port := flag.Int("port", 49998, "server port")
	strategyName := flag.String("strategy", "nearest", "decision strategy: nearest or random")
	sessions := flag.Int("sessions", 1, "number of concurrent sessions to run")
	logLevel := flag.String("log-level", "info", "log level: error, warn, info, debug, trace")
	logFile := flag.String("log-file", "", "write logs to this file (with rotation) instead of stdout")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Printf("Error parsing log level: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(level)
	if *logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}

	step, err := lookupStrategy(*strategyName)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	if *sessions < 1 {
		log.Error("Invalid session count: %d", *sessions)
		os.Exit(1)
	}
	if *name == "" {
		// The server keys sessions by name, so make collisions unlikely.
		*name = fmt.Sprintf("player-%s", uuid.NewString()[:8])
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("Received stop signal, shutting down")
		cancel()
	}()

	// One independent task per session, each owning its own connection.
	wg := &sync.WaitGroup{}
	for i := 0; i < *sessions; i++ {
		sessionName := *name
		if *sessions > 1 {
			sessionName = fmt.Sprintf("%s-%d", *name, i+1)
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			runSession(ctx, name, *host, *port, step)
		}(sessionName)
	}
	wg.Wait()
}

func lookupStrategy(name string) (client.Strategy, error) {
	switch name {
	case "nearest":
		return strategy.NearestFlower, nil
	case "random":
		return strategy.Random, nil
	}
	return nil, fmt.Errorf("unknown strategy: %s", name)
}

func runSession(ctx context.Context, name, host string, port int, step client.Strategy) {
	log.Info("Starting session for %s", name)
	err := client.Play(ctx, name, host, port, step)
	switch {
	case err == nil:
		log.Info("Session %s finished", name)
	case errors.Is(err, context.Canceled):
		log.Info("Session %s interrupted", name)
	default:
		var gameErr *client.ErrGame
		if errors.As(err, &gameErr) {
			log.Error("Session %s ended by server: %s", name, gameErr.Msg)
			return
		}
		log.Error("Session %s failed: %v", name, err)
	}
}
