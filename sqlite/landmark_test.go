package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatsbyLandmarks() []*litmap.Landmark {
	return []*litmap.Landmark{
		{
			ID:          "west-egg",
			Title:       "West Egg",
			Book:        "The Great Gatsby",
			Era:         "1920s",
			Year:        1922,
			Mood:        "lavish,hollow",
			Rank:        1,
			Coordinates: litmap.Coordinates{Lng: -73.7, Lat: 40.8},
		},
		{
			ID:          "valley-of-ashes",
			Title:       "Valley of Ashes",
			Book:        "The Great Gatsby",
			Era:         "1920s",
			Year:        1922,
			Rank:        2,
			Coordinates: litmap.Coordinates{Lng: -73.84, Lat: 40.75},
		},
	}
}

func TestLandmarkService_CreateLandmarks(t *testing.T) {
	t.Parallel()

	t.Run("stores landmarks and marks them imported", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		ctx := context.Background()

		landmarks := gatsbyLandmarks()
		saved, err := svc.CreateLandmarks(ctx, landmarks)
		require.NoError(t, err)
		assert.Equal(t, 2, saved)
		assert.Equal(t, litmap.SourceImport, landmarks[0].Source)
		assert.NotEmpty(t, landmarks[0].ContentHash)
		assert.False(t, landmarks[0].CreatedAt.IsZero())

		found, err := svc.FindLandmarkByID(ctx, "west-egg")
		require.NoError(t, err)
		assert.Equal(t, "West Egg", found.Title)
		assert.Equal(t, "lavish,hollow", found.Mood)
		assert.Equal(t, litmap.Coordinates{Lng: -73.7, Lat: 40.8}, found.Coordinates)
		assert.Equal(t, litmap.SourceImport, found.Source)
	})

	t.Run("skips duplicate content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.CreateLandmarks(ctx, gatsbyLandmarks())
		require.NoError(t, err)

		saved, err := svc.CreateLandmarks(ctx, gatsbyLandmarks())
		require.NoError(t, err)
		assert.Equal(t, 0, saved)

		all, err := svc.FindLandmarks(ctx, litmap.LandmarkFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("suffixes colliding IDs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.CreateLandmarks(ctx, gatsbyLandmarks()[:1])
		require.NoError(t, err)

		other := &litmap.Landmark{
			ID:          "west-egg",
			Title:       "West Egg",
			Book:        "Another Book",
			Era:         "1920s",
			Coordinates: litmap.Coordinates{Lng: -73.7, Lat: 40.8},
		}
		curatedClash := &litmap.Landmark{
			ID:          "hr-harlem",
			Title:       "Harlem Street",
			Book:        "Another Book",
			Era:         "1920s",
			Coordinates: litmap.Coordinates{Lng: -73.9, Lat: 40.8},
		}
		saved, err := svc.CreateLandmarks(ctx, []*litmap.Landmark{other, curatedClash})
		require.NoError(t, err)
		assert.Equal(t, 2, saved)
		assert.NotEqual(t, "west-egg", other.ID)
		assert.Contains(t, other.ID, "west-egg-")
		assert.Contains(t, curatedClash.ID, "hr-harlem-")

		found, err := svc.FindLandmarkByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "Another Book", found.Book)
	})

	t.Run("derives ID when missing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		l := &litmap.Landmark{Title: "Nowhere", Era: "2000s"}

		saved, err := svc.CreateLandmarks(context.Background(), []*litmap.Landmark{l})
		require.NoError(t, err)
		assert.Equal(t, 1, saved)
		assert.Contains(t, l.ID, "lm-")
	})

	t.Run("rejects invalid landmark without storing the batch", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		ctx := context.Background()

		landmarks := gatsbyLandmarks()
		landmarks[1].Era = ""

		_, err := svc.CreateLandmarks(ctx, landmarks)
		require.Error(t, err)
		assert.Equal(t, litmap.EINVALID, litmap.ErrorCode(err))

		all, err := svc.FindLandmarks(ctx, litmap.LandmarkFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestLandmarkService_FindLandmarkByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewLandmarkService(setupTestDB(t))

	_, err := svc.FindLandmarkByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, litmap.ENOTFOUND, litmap.ErrorCode(err))
}

func TestLandmarkService_FindLandmarks(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *sqlite.LandmarkService {
		t.Helper()
		svc := sqlite.NewLandmarkService(setupTestDB(t))
		landmarks := append(gatsbyLandmarks(), &litmap.Landmark{
			ID:          "sethe-house",
			Title:       "124 Bluestone Road",
			Book:        "Beloved",
			Era:         "1870s",
			Year:        1873,
			Coordinates: litmap.Coordinates{Lng: -84.5, Lat: 39.1},
		})
		_, err := svc.CreateLandmarks(context.Background(), landmarks)
		require.NoError(t, err)
		return svc
	}

	t.Run("filters by era", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		era := "1870s"
		got, err := svc.FindLandmarks(context.Background(), litmap.LandmarkFilter{Era: &era})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "sethe-house", got[0].ID)
	})

	t.Run("filters by book and keeps import order", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		book := "The Great Gatsby"
		got, err := svc.FindLandmarks(context.Background(), litmap.LandmarkFilter{Book: &book})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "west-egg", got[0].ID)
		assert.Equal(t, "valley-of-ashes", got[1].ID)
	})

	t.Run("filters by year range", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		from, to := 1900, 1950
		got, err := svc.FindLandmarks(context.Background(), litmap.LandmarkFilter{FromYear: &from, ToYear: &to})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		got, err := svc.FindLandmarks(context.Background(), litmap.LandmarkFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "valley-of-ashes", got[0].ID)

		got, err = svc.FindLandmarks(context.Background(), litmap.LandmarkFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "sethe-house", got[0].ID)
	})
}

func TestLandmarkService_FindBooks(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewLandmarkService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateLandmarks(ctx, gatsbyLandmarks())
	require.NoError(t, err)

	books, err := svc.FindBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Great Gatsby", books[0].Title)
	assert.Equal(t, 2, books[0].Landmarks)
	assert.Equal(t, []string{"1920s"}, books[0].Eras)
	assert.False(t, books[0].CreatedAt.IsZero())
}

func TestLandmarkService_ImportOrder(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	insert := func(id, book, createdAt string) {
		_, err := db.ExecContext(ctx, `
			INSERT INTO landmarks (id, title, book, era, lng, lat, content_hash, created_at)
			VALUES (?, ?, ?, '1920s', 0, 0, ?, ?)
		`, id, id, book, id, createdAt)
		require.NoError(t, err)
	}
	// A whole-second timestamp sorts after a fractional one as text.
	insert("first", "Earlier Book", "2026-01-01T00:00:05Z")
	insert("second", "Later Book", "2026-01-01T00:00:05.1Z")

	svc := sqlite.NewLandmarkService(db)

	landmarks, err := svc.FindLandmarks(ctx, litmap.LandmarkFilter{})
	require.NoError(t, err)
	require.Len(t, landmarks, 2)
	assert.Equal(t, "first", landmarks[0].ID)
	assert.Equal(t, "second", landmarks[1].ID)

	books, err := svc.FindBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Earlier Book", books[0].Title)
	assert.Equal(t, "Later Book", books[1].Title)
}

func TestLandmarkService_DeleteLandmarksByBook(t *testing.T) {
	t.Parallel()

	t.Run("removes landmarks of the book", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.CreateLandmarks(ctx, gatsbyLandmarks())
		require.NoError(t, err)

		n, err := svc.DeleteLandmarksByBook(ctx, "The Great Gatsby")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		books, err := svc.FindBooks(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("returns not found for unknown book", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLandmarkService(setupTestDB(t))

		_, err := svc.DeleteLandmarksByBook(context.Background(), "Unknown")
		assert.Equal(t, litmap.ENOTFOUND, litmap.ErrorCode(err))
	})
}
