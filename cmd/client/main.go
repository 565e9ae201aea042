package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/config"
	"github.com/tourguide-client/internal/domain"
	"github.com/tourguide-client/internal/infrastructure/api"
	"github.com/tourguide-client/internal/infrastructure/location"
	"github.com/tourguide-client/internal/pkg/logger"
	"github.com/tourguide-client/internal/repository/credentials"
	"github.com/tourguide-client/internal/usecase"
)

const usageText = `Tour Guide console client.

Usage:
  client signup <name> <email> <password>
  client login <email> <password>
  client logout
  client whoami
  client tours [category]
  client tour <id>
  client enroll <id>
  client my-tours
  client report-location <tour-id>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	app := newApp(cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Client.RequestTimeout+5*time.Second)
	defer cancel()

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app связывает шлюзы и use cases консольного клиента.
type app struct {
	cfg *config.Config
	log *zap.Logger

	session  *usecase.SessionUseCase
	tourList *usecase.TourListUseCase
	myTours  *usecase.MyToursUseCase

	detailFactory func(tourID string) *usecase.TourDetailUseCase
}

func newApp(cfg *config.Config, log *zap.Logger) *app {
	creds := credentials.NewStore(afero.NewOsFs(), cfg.Client.CredentialsFile, log.Named("credentials"))

	client := api.NewClient(&cfg.Client, creds, log.Named("api"))
	tourGW := api.NewTourGateway(client, log)
	enrollmentGW := api.NewEnrollmentGateway(client, log)
	authGW := api.NewAuthGateway(client, log)
	locationProvider := location.NewStatic(&cfg.Location, log)

	return &app{
		cfg:      cfg,
		log:      log,
		session:  usecase.NewSessionUseCase(authGW, creds, log),
		tourList: usecase.NewTourListUseCase(tourGW, log),
		myTours:  usecase.NewMyToursUseCase(tourGW, enrollmentGW, log),
		detailFactory: func(tourID string) *usecase.TourDetailUseCase {
			return usecase.NewTourDetailUseCase(tourID, tourGW, enrollmentGW, locationProvider, log)
		},
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		if len(args) != 3 {
			return fmt.Errorf("usage: client signup <name> <email> <password>")
		}
		session, err := a.session.Signup(ctx, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Signed up as %s <%s>\n", session.User.Name, session.User.Email)
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: client login <email> <password>")
		}
		session, err := a.session.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
		return nil

	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil

	case "whoami":
		session, err := a.session.Resume(ctx)
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", session.User.Name, session.User.Email)
		return nil

	case "tours":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		return a.listTours(ctx, category)

	case "tour":
		if len(args) != 1 {
			return fmt.Errorf("usage: client tour <id>")
		}
		return a.showTour(ctx, args[0])

	case "enroll":
		if len(args) != 1 {
			return fmt.Errorf("usage: client enroll <id>")
		}
		return a.enroll(ctx, args[0])

	case "my-tours":
		return a.listMyTours(ctx)

	case "report-location":
		if len(args) != 1 {
			return fmt.Errorf("usage: client report-location <tour-id>")
		}
		return a.reportLocation(ctx, args[0])

	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) listTours(ctx context.Context, category string) error {
	tours, err := a.tourList.List(ctx, category)
	if err != nil {
		return err
	}

	if len(tours) == 0 {
		fmt.Println("No tours found")
		return nil
	}

	for _, tour := range tours {
		fmt.Printf("%s  %-35s %-8s %-9s %s, %s (%.1f, %d reviews)\n",
			tour.ID, tour.Name, tour.Category, tour.Difficulty,
			tour.Duration, tour.Distance, tour.Rating, tour.ReviewsCount)
	}
	return nil
}

func (a *app) showTour(ctx context.Context, tourID string) error {
	detail := a.detailFactory(tourID)
	defer detail.Close()

	detail.Load(ctx)
	state := detail.State()

	if state.Phase == usecase.PhaseFailed {
		return state.Err
	}

	tour := state.Tour
	fmt.Printf("%s (%s, %s)\n", tour.Name, tour.Difficulty, tour.Category)
	fmt.Printf("%s\n\n", tour.Description)
	fmt.Printf("Duration: %s  Distance: %s  Rating: %.1f (%d reviews)\n",
		tour.Duration, tour.Distance, tour.Rating, tour.ReviewsCount)

	fmt.Printf("\nMap viewport: center (%.4f, %.4f), span (%.4f, %.4f)\n",
		state.Viewport.Center.Lat, state.Viewport.Center.Lng,
		state.Viewport.LatSpan, state.Viewport.LngSpan)

	fmt.Println("\nPoints of interest:")
	for _, poi := range tour.PointsOfInterest {
		fmt.Printf("  %d. %-25s (%.4f, %.4f)\n", poi.Order, poi.Name, poi.Location.Lat, poi.Location.Lng)
	}

	fmt.Printf("\nLocation: %s", state.Location)
	if state.Position != nil {
		fmt.Printf(" (%.4f, %.4f)", state.Position.Lat, state.Position.Lng)
	}
	fmt.Println()

	if state.IsEnrolled {
		fmt.Println("You are enrolled in this tour")
	}
	return nil
}

func (a *app) enroll(ctx context.Context, tourID string) error {
	detail := a.detailFactory(tourID)
	defer detail.Close()

	detail.Load(ctx)
	if state := detail.State(); state.Phase == usecase.PhaseFailed {
		return state.Err
	}

	if err := detail.Enroll(ctx); err != nil {
		return err
	}

	fmt.Println("Enrolled! The tour is now in your list.")
	return nil
}

func (a *app) listMyTours(ctx context.Context) error {
	items, err := a.myTours.List(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("You are not enrolled in any tours yet")
		return nil
	}

	for _, item := range items {
		name := "(tour unavailable)"
		if item.Tour != nil {
			name = item.Tour.Name
		}
		status := string(item.Enrollment.Status)
		if item.Enrollment.Status == domain.EnrollmentInProgress {
			status = fmt.Sprintf("%s %d%%", status, item.Enrollment.Progress)
		}
		fmt.Printf("%-35s %-15s enrolled %s\n",
			name, status, item.Enrollment.StartedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *app) reportLocation(ctx context.Context, tourID string) error {
	detail := a.detailFactory(tourID)
	defer detail.Close()

	detail.Load(ctx)
	if state := detail.State(); state.Phase == usecase.PhaseFailed {
		return state.Err
	}

	if err := detail.ReportLocation(ctx); err != nil {
		return err
	}

	fmt.Println("Location reported")
	return nil
}
