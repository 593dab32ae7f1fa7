package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	mesh := flag.String("mesh", scene.DefaultMeshPath, "Mesh file for the 'mesh' scene")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	webServer := server.NewServer(*port, *mesh)

	core.Logger().Info("Whitted Raytracer Web Server", "url", "http://localhost:"+flag.Lookup("port").Value.String())

	if err := webServer.Start(); err != nil {
		core.Logger().Error("error starting server", "err", err)
		os.Exit(1)
	}
}
