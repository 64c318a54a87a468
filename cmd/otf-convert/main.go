package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	otfconv "github.com/nsip/otf-convert"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("otf-convert", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this grading service instance, leave blank to auto-generate a name")
		serviceID   = fs.String("id", "", "id for this grading service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		logLevel    = fs.String("logLevel", "info", "server log level, one of debug|info|warn|error|off")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("OTF_CONVERT_SRVC"),
	); err != nil {
		fmt.Printf("\nCannot read otf-convert configuration:\n%s\n\n", err)
		os.Exit(1)
	}

	opts := []otfconv.Option{
		otfconv.Name(*serviceName),
		otfconv.ID(*serviceID),
		otfconv.Host(*serviceHost),
		otfconv.Port(*servicePort),
		otfconv.LogLevel(*logLevel),
	}

	srvc, err := otfconv.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create otf-convert service:\n%s\n\n", err)
		os.Exit(1)
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\notf-convert shutting down")
		srvc.Shutdown()
		fmt.Println("otf-convert closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
