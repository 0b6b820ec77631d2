// Command button-daemon watches a single GPIO button and converts raw
// pin transitions into gestures — press, release, N-repeat click, and
// timed hold — launching the command configured for each gesture.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sweeney/button-daemon/internal/action"
	"github.com/sweeney/button-daemon/internal/config"
	"github.com/sweeney/button-daemon/internal/events"
	"github.com/sweeney/button-daemon/internal/gesture"
	"github.com/sweeney/button-daemon/internal/gpio"
	"github.com/sweeney/button-daemon/internal/launch"
	"github.com/sweeney/button-daemon/internal/status"
	"github.com/sweeney/button-daemon/internal/web"
)

const (
	defaultConfigPath      = "/etc/button-daemon/button.conf"
	envConfigPath          = "BUTTON_DAEMON_CONF"
	defaultClickCountLimit = 8

	// clickCountLimitKey is the config key consulted when the limit is
	// not given on the command line.
	clickCountLimitKey = "CLICK_COUNT_LIMIT"
)

var version = "1.00"

type options struct {
	pin                int
	polarity           gpio.Polarity
	confPath           string
	clickCountLimit    uint
	clickCountLimitSet bool
	debug              uint
	mode               gesture.TimeMode
	broker             string
	httpAddr           string
	showVersion        bool
	showTimeHelp       bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.showVersion {
		fmt.Printf("button-daemon %s\n", version)
		return
	}
	if opts.showTimeHelp {
		fmt.Print(timeHelp)
		return
	}

	log.SetLevel(logLevel(opts.debug))

	if err := run(opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("button-daemon", flag.ContinueOnError)

	fs.IntVar(&opts.pin, "gpio", gpio.DefaultPin, "GPIO number of the button pin")
	activeLow := fs.Bool("active-low", false, "configure the pin for active low triggering")
	activeHigh := fs.Bool("active-high", false, "configure the pin for active high triggering (default: leave the GPIO setting as is)")
	fs.StringVar(&opts.confPath, "conf", "",
		fmt.Sprintf("path to the action configuration file (default %s; $%s overrides)", defaultConfigPath, envConfigPath))
	fs.UintVar(&opts.clickCountLimit, "click-count-limit", defaultClickCountLimit, "click count limit, 0 for no limit")
	fs.UintVar(&opts.clickCountLimit, "n", defaultClickCountLimit, "short for -click-count-limit")
	fs.UintVar(&opts.debug, "debug", 1, "debug level (higher value = more logging)")
	quiet := fs.Bool("q", false, "short for -debug 0 (turns off all but errors)")
	fs.BoolVar(&opts.mode.Full, "full-time", false, "report both odd and even hold seconds (-help-time for details)")
	fs.BoolVar(&opts.mode.Offset, "offset-time", false, "offset hold second buckets by half a second (-help-time for details)")
	fs.BoolVar(&opts.showTimeHelp, "help-time", false, "explain the time options above")
	fs.BoolVar(&opts.showVersion, "version", false, "show the version information")
	fs.StringVar(&opts.broker, "broker", "", "MQTT broker address for gesture events (empty to disable)")
	fs.StringVar(&opts.httpAddr, "http", "", "HTTP status address (empty to disable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *activeLow && *activeHigh {
		fmt.Fprintln(fs.Output(), "only one of -active-low and -active-high may be given")
		fs.Usage()
		return nil, errors.New("conflicting polarity flags")
	}
	switch {
	case *activeLow:
		opts.polarity = gpio.PolarityActiveLow
	case *activeHigh:
		opts.polarity = gpio.PolarityActiveHigh
	}

	if *quiet {
		opts.debug = 0
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "click-count-limit" || f.Name == "n" {
			opts.clickCountLimitSet = true
		}
	})

	// Precedence: -conf flag, then environment, then the default path.
	if opts.confPath == "" {
		if env := os.Getenv(envConfigPath); env != "" {
			opts.confPath = env
		} else {
			opts.confPath = defaultConfigPath
		}
	}

	return opts, nil
}

// logLevel maps the -debug level onto logrus levels.
func logLevel(debug uint) log.Level {
	switch debug {
	case 0:
		return log.ErrorLevel
	case 1:
		return log.InfoLevel
	case 2:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}

func run(opts *options) error {
	conf := config.File{Path: opts.confPath}

	// The CLI flag wins; otherwise the config file may set the limit.
	limit := opts.clickCountLimit
	if !opts.clickCountLimitSet {
		limit = conf.LookupUint(clickCountLimitKey, limit)
	}

	input, err := gpio.NewRealInput(opts.pin, opts.polarity)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer input.Close()

	var publisher events.Publisher
	var mqttStatus events.ConnectionStatus
	if opts.broker != "" {
		pub, err := events.NewRealPublisher(opts.broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		defer pub.Close()
		publisher = pub
		mqttStatus = pub
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		Pin:             opts.pin,
		ConfigPath:      opts.confPath,
		ClickWindowMs:   gesture.DefaultClickWindow.Milliseconds(),
		HoldThresholdMs: gesture.DefaultHoldThreshold.Milliseconds(),
		ClickCountLimit: limit,
		FullTime:        opts.mode.Full,
		OffsetTime:      opts.mode.Offset,
		Broker:          opts.broker,
		HTTPAddr:        opts.httpAddr,
	})

	if publisher != nil {
		startup := events.SystemEvent{Timestamp: time.Now(), Event: "STARTUP", Retained: true}
		if err := publisher.PublishSystem(startup); err != nil {
			log.Warnf("publish startup event: %v", err)
		}
	}

	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Infof("http status server listening on %s", opts.httpAddr)
	}

	classifier := gesture.NewClassifier(gesture.DefaultClickWindow, gesture.DefaultHoldThreshold, int(limit))
	resolver := &action.Resolver{Config: conf, Mode: opts.mode}

	log.Infof("listening to events on GPIO #%d (conf=%s click-count-limit=%d)", opts.pin, opts.confPath, limit)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(input, classifier, resolver, launch.Exec{}, publisher, mqttStatus, tracker, newWindowTimer(), time.Now, sigCh)
}

// runLoop is the daemon's single event-handling path: it blocks on the
// pin change notifications, the coalescing timer, and termination
// signals. All classifier state is mutated here and nowhere else.
func runLoop(input gpio.Input, classifier *gesture.Classifier, resolver *action.Resolver, launcher launch.Launcher, publisher events.Publisher, mqttStatus events.ConnectionStatus, tracker *status.Tracker, timer windowTimer, now func() time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Infof("received %v, shutting down", s)
			if publisher != nil {
				event := events.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName(s),
					Retained:  true,
				}
				if err := publisher.PublishSystem(event); err != nil {
					log.Warnf("publish shutdown event: %v", err)
				}
			}
			return nil

		case _, ok := <-input.Changes():
			if !ok {
				return errors.New("pin change stream closed")
			}
			t := now()
			// Level is read after the notification, never before, so
			// the snapshot is consistent with the edge that woke us.
			pressed, err := input.Level()
			if err != nil {
				return fmt.Errorf("read pin: %w", err)
			}
			log.Tracef("pin level change: pressed=%v", pressed)

			gestures, rearm := classifier.HandleLevel(pressed, t)
			if rearm {
				timer.Arm(classifier.Window())
			}
			dispatch(gestures, resolver, launcher, publisher, mqttStatus, tracker)

		case <-timer.C():
			dispatch(classifier.HandleExpiry(now()), resolver, launcher, publisher, mqttStatus, tracker)
		}
	}
}

// dispatch routes each emitted gesture: record, publish, resolve,
// launch. Nothing in here may fail the daemon — a broken config or a
// missing action script must not disable button detection.
func dispatch(gestures []gesture.Event, resolver *action.Resolver, launcher launch.Launcher, publisher events.Publisher, mqttStatus events.ConnectionStatus, tracker *status.Tracker) {
	for _, ev := range gestures {
		log.Infof("gesture: %s count=%d held=%v", ev.Kind, ev.Count, ev.Held)

		if tracker != nil {
			tracker.Record(ev)
			if mqttStatus != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}
		}

		if publisher != nil {
			if err := publisher.Publish(ev); err != nil {
				log.Warnf("publish gesture: %v", err)
			}
		}

		cmd, err := resolver.Resolve(ev)
		if err != nil {
			log.Warnf("resolve %s: %v", ev.Kind, err)
			continue
		}
		if cmd == nil {
			continue
		}
		log.Debugf("launching %s %v", cmd.Path, cmd.Args)
		if err := launcher.Launch(cmd.Path, cmd.Args); err != nil {
			log.Warnf("launch %s: %v", cmd.Path, err)
		}
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}
