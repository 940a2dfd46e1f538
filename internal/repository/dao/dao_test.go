package dao_test

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var testDB *gorm.DB

// TestMain spins up a throwaway Postgres container so the unique-constraint
// classification can be exercised against the real thing.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=tappedout_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=postgres password=secret dbname=tappedout_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = dao.InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

var seedSeq atomic.Uint64

// fixture seeds the reference rows plus one competitor, sport, category and
// event, all with unique names so tests don't collide.
type fixture struct {
	gender   dao.Gender
	userType dao.UserType
	user     dao.User
	sport    dao.Sport
	category dao.Category
	event    dao.Event
}

func seedFixture(t *testing.T) fixture {
	t.Helper()
	skipWithoutDocker(t)

	ctx := context.Background()
	n := seedSeq.Add(1)

	refDAO := dao.NewReferenceDAO(testDB)
	gender, err := refDAO.InsertGender(ctx, dao.Gender{Name: fmt.Sprintf("gender-%d", n)})
	require.NoError(t, err)
	userType, err := refDAO.InsertUserType(ctx, dao.UserType{Name: fmt.Sprintf("type-%d", n)})
	require.NoError(t, err)

	user, err := dao.NewUserDAO(testDB).Insert(ctx, dao.User{
		DNI:          fmt.Sprintf("dni-%d", n),
		TypeID:       userType.ID,
		Email:        fmt.Sprintf("user-%d@example.com", n),
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		DateOfBirth:  time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		GenderID:     gender.ID,
		Country:      "Spain",
		City:         "Madrid",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	sport, err := dao.NewSportDAO(testDB).Insert(ctx, dao.Sport{Name: fmt.Sprintf("sport-%d", n)})
	require.NoError(t, err)

	category, err := dao.NewCategoryDAO(testDB).Insert(ctx, dao.Category{
		SportID:  sport.ID,
		Name:     fmt.Sprintf("category-%d", n),
		GenderID: gender.ID,
	})
	require.NoError(t, err)

	start := time.Now().Add(30 * 24 * time.Hour)
	event, err := dao.NewEventDAO(testDB).Insert(ctx, dao.Event{
		SportID:     sport.ID,
		OrganizerID: user.ID,
		Name:        fmt.Sprintf("event-%d", n),
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
		Status:      "PLANNED",
		Country:     "Spain",
		City:        "Madrid",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)

	return fixture{gender: gender, userType: userType, user: user, sport: sport, category: category, event: event}
}

func skipWithoutDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping dao integration tests in short mode")
	}
}

func TestUserDAO_UniqueViolations(t *testing.T) {
	f := seedFixture(t)
	ctx := context.Background()
	userDAO := dao.NewUserDAO(testDB)

	base := dao.User{
		TypeID:       f.userType.ID,
		PasswordHash: "x",
		FirstName:    "Dup",
		LastName:     "User",
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		GenderID:     f.gender.ID,
		Country:      "Spain",
		City:         "Madrid",
		CreatedAt:    time.Now(),
	}

	dupDNI := base
	dupDNI.DNI = f.user.DNI
	dupDNI.Email = "fresh-dni-check@example.com"
	_, err := userDAO.Insert(ctx, dupDNI)
	assert.ErrorIs(t, err, dao.ErrUserDNIExists)

	dupEmail := base
	dupEmail.DNI = "fresh-dni-00000001"
	dupEmail.Email = f.user.Email
	_, err = userDAO.Insert(ctx, dupEmail)
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestUserDAO_Search(t *testing.T) {
	f := seedFixture(t)
	ctx := context.Background()

	found, err := dao.NewUserDAO(testDB).Search(ctx, f.user.Email[:10])

	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, f.user.ID, found[0].ID)
}

func TestCategoryDAO_UniquePerSportAndName(t *testing.T) {
	f := seedFixture(t)
	ctx := context.Background()
	categoryDAO := dao.NewCategoryDAO(testDB)

	_, err := categoryDAO.Insert(ctx, dao.Category{
		SportID:  f.sport.ID,
		Name:     f.category.Name,
		GenderID: f.gender.ID,
	})
	assert.ErrorIs(t, err, dao.ErrCategoryExists)

	// Same name under a different sport is fine.
	otherSport, err := dao.NewSportDAO(testDB).Insert(ctx, dao.Sport{Name: f.sport.Name + "-alt"})
	require.NoError(t, err)
	_, err = categoryDAO.Insert(ctx, dao.Category{
		SportID:  otherSport.ID,
		Name:     f.category.Name,
		GenderID: f.gender.ID,
	})
	assert.NoError(t, err)
}

func TestInscriptionDAO_UniqueCompetitorEvent(t *testing.T) {
	f := seedFixture(t)
	ctx := context.Background()
	inscriptionDAO := dao.NewInscriptionDAO(testDB)

	first, err := inscriptionDAO.Insert(ctx, dao.Inscription{
		CompetitorID:  f.user.ID,
		EventID:       f.event.ID,
		CategoryID:    f.category.ID,
		RegisterDate:  time.Now(),
		PaymentStatus: "PENDING",
	})
	require.NoError(t, err)

	_, err = inscriptionDAO.Insert(ctx, dao.Inscription{
		CompetitorID:  f.user.ID,
		EventID:       f.event.ID,
		CategoryID:    f.category.ID,
		RegisterDate:  time.Now(),
		PaymentStatus: "PENDING",
	})
	assert.ErrorIs(t, err, dao.ErrInscriptionExists)

	exists, err := inscriptionDAO.ExistsByCompetitorAndEvent(ctx, f.user.ID, f.event.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := inscriptionDAO.CountByEventAndPaymentStatus(ctx, f.event.ID, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, inscriptionDAO.Delete(ctx, first.ID))
	assert.ErrorIs(t, inscriptionDAO.Delete(ctx, first.ID), dao.ErrInscriptionNotFound)
}

func TestResultDAO_UniqueViolations(t *testing.T) {
	f := seedFixture(t)
	ctx := context.Background()
	resultDAO := dao.NewResultDAO(testDB)

	_, err := resultDAO.Insert(ctx, dao.Result{
		EventID:      f.event.ID,
		CategoryID:   f.category.ID,
		CompetitorID: f.user.ID,
		Position:     1,
	})
	require.NoError(t, err)

	// Same competitor again in the same (event, category).
	_, err = resultDAO.Insert(ctx, dao.Result{
		EventID:      f.event.ID,
		CategoryID:   f.category.ID,
		CompetitorID: f.user.ID,
		Position:     2,
	})
	assert.ErrorIs(t, err, dao.ErrResultExists)

	// Another competitor taking an occupied position.
	other := seedSecondCompetitor(t, f)
	_, err = resultDAO.Insert(ctx, dao.Result{
		EventID:      f.event.ID,
		CategoryID:   f.category.ID,
		CompetitorID: other.ID,
		Position:     1,
	})
	assert.ErrorIs(t, err, dao.ErrResultPositionExists)

	taken, err := resultDAO.ExistsPosition(ctx, f.event.ID, f.category.ID, 1, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	winner, err := resultDAO.FindByEventCategoryPosition(ctx, f.event.ID, f.category.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, winner.CompetitorID)
}

func seedSecondCompetitor(t *testing.T, f fixture) dao.User {
	t.Helper()

	n := seedSeq.Add(1)
	user, err := dao.NewUserDAO(testDB).Insert(context.Background(), dao.User{
		DNI:          fmt.Sprintf("dni-%d", n),
		TypeID:       f.userType.ID,
		Email:        fmt.Sprintf("user-%d@example.com", n),
		PasswordHash: "x",
		FirstName:    "Second",
		LastName:     "Competitor",
		DateOfBirth:  time.Date(1998, 3, 2, 0, 0, 0, 0, time.UTC),
		GenderID:     f.gender.ID,
		Country:      "Spain",
		City:         "Madrid",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	return user
}
