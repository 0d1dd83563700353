package repository

import (
	"context"
	"os"
	"testing"

	"featureboard/internal/config"
	"featureboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver  string
		name    string
		wantErr bool
	}{
		{driver: "", name: "postgres"},
		{driver: "postgres", name: "postgres"},
		{driver: "mysql", name: "mysql"},
		{driver: "sqlite", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(config.DatabaseConfig{Driver: tt.driver, DSN: "unused"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

// openTestDB connects to FEATUREBOARD_TEST_DSN, skipping the test when unset.
func openTestDB(t *testing.T) *FeatureRepository {
	t.Helper()
	dsn := os.Getenv("FEATUREBOARD_TEST_DSN")
	if dsn == "" {
		t.Skip("FEATUREBOARD_TEST_DSN not set")
	}
	db, err := Open(config.DatabaseConfig{
		Driver:      os.Getenv("FEATUREBOARD_TEST_DRIVER"),
		DSN:         dsn,
		AutoMigrate: true,
	})
	require.NoError(t, err)
	return NewFeatureRepository(db)
}

func TestFeatureLifecycle(t *testing.T) {
	features := openTestDB(t)
	attributes := NewAttributesRepository(features.db)
	lookups := NewLookupRepository(features.db)
	ctx := context.Background()

	status := &model.Status{Name: "Planned"}
	team := &model.Team{Name: "Payments"}
	require.NoError(t, features.db.Create(status).Error)
	require.NoError(t, features.db.Create(team).Error)
	t.Cleanup(func() {
		features.db.Delete(status)
		features.db.Delete(team)
	})

	f := &model.Feature{Name: "Login flow"}
	require.NoError(t, features.Create(ctx, f))
	require.NotEmpty(t, f.ID)

	dep := &model.FeatureDependency{FeatureID: &f.ID, DependentTeamID: &team.ID}
	require.NoError(t, features.db.Create(dep).Error)
	t.Cleanup(func() { features.db.Delete(dep) })

	got, err := features.GetJoined(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.HasAttributes())
	require.Len(t, got.Dependencies, 1)
	assert.Equal(t, "Payments", got.Dependencies[0].TeamName())

	require.NoError(t, attributes.Insert(ctx, f.ID, AttributeValues{StatusID: &status.ID}))
	got, err = features.GetJoined(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, got.HasAttributes())
	assert.Equal(t, "Planned", got.StatusName())

	require.NoError(t, attributes.UpdateByFeature(ctx, f.ID, AttributeValues{TeamID: &team.ID}))
	got, err = features.GetJoined(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.StatusName())
	assert.Equal(t, "Payments", got.TeamName())

	desc := "updated"
	require.NoError(t, features.UpdateDetails(ctx, f.ID, "Login flow v2", &desc))

	statuses, err := lookups.Statuses(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, statuses)

	require.NoError(t, features.db.Delete(dep).Error)
	require.NoError(t, attributes.DeleteByFeature(ctx, f.ID))
	require.NoError(t, features.Delete(ctx, f.ID))

	got, err = features.GetJoined(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
