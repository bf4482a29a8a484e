package service

import (
	"context"
	"testing"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStudents(t *testing.T) {
	ctx := context.Background()
	svc := NewStudents(newStore(t))

	bob, err := svc.Create(ctx, model.Student{ID: 77, Name: "Bob", Email: "bob@x.com", Age: 20, Course: "CS"})
	require.NoError(t, err)
	require.Equal(t, int64(1), bob.ID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, model.Student{Name: "Bobby", Email: "bob@x.com", Age: 30, Course: "Art"})
		require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("partial update of age only", func(t *testing.T) {
		got, err := svc.UpdatePartial(ctx, bob.ID, model.StudentPatch{Age: intPtr(21)})
		require.NoError(t, err)
		require.Equal(t, "Bob", got.Name)
		require.Equal(t, "bob@x.com", got.Email)
		require.Equal(t, "CS", got.Course)
		require.Equal(t, 21, got.Age)
	})

	t.Run("full update replaces all fields", func(t *testing.T) {
		want := model.Student{Name: "Bob", Email: "robert@x.com", Age: 21, Course: "Physics"}
		got, err := svc.UpdateFull(ctx, bob.ID, want)
		require.NoError(t, err)
		want.ID = bob.ID
		require.Equal(t, want, *got)

		stored, err := svc.Get(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, want, *stored)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := svc.Get(ctx, 404)
		require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		_, err = svc.UpdateFull(ctx, 404, model.Student{Name: "x", Email: "x@x.io"})
		require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		_, err = svc.UpdatePartial(ctx, 404, model.StudentPatch{})
		require.ErrorIs(t, err, apperrors.ErrStudentNotFound)

		before, err := svc.List(ctx)
		require.NoError(t, err)
		_, err = svc.Delete(ctx, 404)
		require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		after, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("delete", func(t *testing.T) {
		gone, err := svc.Delete(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "robert@x.com", gone.Email)
		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})
}
