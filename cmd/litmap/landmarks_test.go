package main_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/litmap"
	main "github.com/fwojciec/litmap/cmd/litmap"
	"github.com/fwojciec/litmap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedLandmarks(landmarks ...*litmap.Landmark) *mock.LandmarkService {
	return &mock.LandmarkService{
		FindLandmarksFn: func(_ context.Context, filter litmap.LandmarkFilter) ([]*litmap.Landmark, error) {
			var out []*litmap.Landmark
			for _, l := range landmarks {
				if filter.Match(l) {
					out = append(out, l)
				}
			}
			return out, nil
		},
	}
}

var beale = &litmap.Landmark{
	ID:          "lm-beale",
	Title:       "Beale Street",
	Book:        "Memphis Blues",
	Era:         "1940s",
	Year:        1946,
	Coordinates: litmap.Coordinates{Lng: -90.05, Lat: 35.14},
	Source:      litmap.SourceImport,
}

func TestLandmarksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists curated and stored landmarks", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Landmarks = storedLandmarks(beale)

		err := (&main.LandmarksCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "jlc-san-francisco")
		assert.Contains(t, stdout.String(), "cr-lincoln-memorial")
		assert.Contains(t, stdout.String(), "lm-beale  Beale Street (1946)")
		assert.Contains(t, stdout.String(), "1920s · Harlem Renaissance")
	})

	t.Run("filters by year range", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Landmarks = storedLandmarks(beale)

		err := (&main.LandmarksCmd{From: 1940, To: 1950}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "jlc-chinatown")
		assert.Contains(t, stdout.String(), "lm-beale")
		assert.NotContains(t, stdout.String(), "hr-harlem")
		assert.NotContains(t, stdout.String(), "cr-birmingham")
	})

	t.Run("prints GeoJSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		era := "1960s"

		err := (&main.LandmarksCmd{Era: era, GeoJSON: true}).Run(deps)

		require.NoError(t, err)
		var fc litmap.FeatureCollection
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &fc))
		assert.Equal(t, litmap.TypeFeatureCollection, fc.Type)
		require.Len(t, fc.Features, 3)
		assert.Equal(t, "cr-montgomery", fc.Features[0].Properties.ID)
	})

	t.Run("shows message when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()

		err := (&main.LandmarksCmd{Era: "1800s"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No landmarks match.")
	})

	t.Run("reports storage errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			FindLandmarksFn: func(context.Context, litmap.LandmarkFilter) ([]*litmap.Landmark, error) {
				return nil, litmap.Errorf(litmap.EINTERNAL, "database locked")
			},
		}

		err := (&main.LandmarksCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database locked")
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	deps.Landmarks = storedLandmarks(beale)

	err := (&main.StatsCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Books:     4")
	assert.Contains(t, stdout.String(), "Locations: 9")
	assert.Contains(t, stdout.String(), "Eras:      3")
	assert.Contains(t, stdout.String(), "Regions:   1")
	assert.Contains(t, stdout.String(), "Years:     1920-1970")
}

func TestBooksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists imported books", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			FindBooksFn: func(context.Context) ([]*litmap.BookSummary, error) {
				return []*litmap.BookSummary{{Title: "Memphis Blues", Landmarks: 3, Eras: []string{"1940s", "1950s"}}}, nil
			},
		}

		err := (&main.BooksCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Memphis Blues  3 landmarks  1940s, 1950s\n", stdout.String())
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			FindBooksFn: func(context.Context) ([]*litmap.BookSummary, error) { return nil, nil },
		}

		err := (&main.BooksCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No imported books")
	})
}

func TestForgetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()

		err := (&main.ForgetCmd{Book: "Jazz"}).Run(deps)

		assert.Equal(t, litmap.EINVALID, litmap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes landmarks of the book", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			DeleteLandmarksByBookFn: func(_ context.Context, book string) (int, error) {
				deleted = book
				return 4, nil
			},
		}

		err := (&main.ForgetCmd{Book: "Jazz", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Jazz", deleted)
		assert.Contains(t, stdout.String(), `Removed 4 landmarks of "Jazz"`)
	})

	t.Run("reports unknown book", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			DeleteLandmarksByBookFn: func(context.Context, string) (int, error) {
				return 0, litmap.Errorf(litmap.ENOTFOUND, "book not found")
			},
		}

		err := (&main.ForgetCmd{Book: "Nope", Force: true}).Run(deps)

		assert.Equal(t, litmap.ENOTFOUND, litmap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "litmap books")
	})

	t.Run("reports other errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Landmarks = &mock.LandmarkService{
			DeleteLandmarksByBookFn: func(context.Context, string) (int, error) {
				return 0, errors.New("disk failure")
			},
		}

		err := (&main.ForgetCmd{Book: "Jazz", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}
