package service

import (
	"context"
	"time"

	"featureboard/internal/dto/req"
	"featureboard/internal/metrics"
	"featureboard/internal/model"
	"featureboard/internal/repository"
	"featureboard/pkg/logger"

	"go.uber.org/zap"
)

// FeatureService runs the add, edit and delete submissions against the
// record store. Writes are issued one at a time without a transaction; the
// first failing write ends the submission.
type FeatureService struct {
	features   repository.FeatureInterface
	attributes repository.AttributesInterface
	observer   metrics.StoreObserver
}

func NewFeatureService(features repository.FeatureInterface, attributes repository.AttributesInterface, observer metrics.StoreObserver) *FeatureService {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &FeatureService{
		features:   features,
		attributes: attributes,
		observer:   observer,
	}
}

// GetFeature returns the joined feature or ErrFeatureNotFound.
func (s *FeatureService) GetFeature(ctx context.Context, id string) (*model.Feature, error) {
	start := time.Now()
	f, err := s.features.GetJoined(ctx, id)
	s.observer.ObserveQuery("get_feature", time.Since(start).Seconds())
	if err != nil {
		logger.Error("failed to fetch feature", zap.String("feature_id", id), zap.Error(err))
		return nil, opError(ErrFeaturesFetch, err)
	}
	if f == nil {
		return nil, ErrFeatureNotFound
	}
	return f, nil
}

// UpdateFeature writes the feature row, then updates the attributes row when
// the feature already has one and inserts it otherwise.
func (s *FeatureService) UpdateFeature(ctx context.Context, r req.EditFeatureRequest) error {
	f, err := s.GetFeature(ctx, r.ID)
	if err != nil {
		return err
	}

	if err := s.features.UpdateDetails(ctx, r.ID, r.Name, req.Ref(r.Description)); err != nil {
		logger.Error("failed to update feature", zap.String("feature_id", r.ID), zap.Error(err))
		s.observer.RecordMutation("update_feature", metrics.OutcomeError)
		return opError(ErrFeatureUpdate, err)
	}
	s.observer.RecordMutation("update_feature", metrics.OutcomeOK)

	values := repository.AttributeValues{
		StatusID:         req.Ref(r.StatusID),
		TeamID:           req.Ref(r.TeamID),
		MoscowPriorityID: req.Ref(r.MoscowPriorityID),
		FeatureTypeID:    req.Ref(r.FeatureTypeID),
		BusinessValueID:  req.Ref(r.BusinessValueID),
	}

	op := "insert_attributes"
	if f.HasAttributes() {
		op = "update_attributes"
		err = s.attributes.UpdateByFeature(ctx, r.ID, values)
	} else {
		err = s.attributes.Insert(ctx, r.ID, values)
	}
	if err != nil {
		logger.Error("failed to save feature attributes", zap.String("feature_id", r.ID), zap.String("op", op), zap.Error(err))
		s.observer.RecordMutation(op, metrics.OutcomeError)
		return opError(ErrAttributesSave, err)
	}
	s.observer.RecordMutation(op, metrics.OutcomeOK)

	logger.Info("feature updated", zap.String("feature_id", r.ID))
	return nil
}

// DeleteFeature removes the attributes row and then the feature. Only the
// feature deletion can fail the call.
func (s *FeatureService) DeleteFeature(ctx context.Context, id string) error {
	if err := s.attributes.DeleteByFeature(ctx, id); err != nil {
		logger.Warn("failed to delete feature attributes", zap.String("feature_id", id), zap.Error(err))
		s.observer.RecordMutation("delete_attributes", metrics.OutcomeError)
	} else {
		s.observer.RecordMutation("delete_attributes", metrics.OutcomeOK)
	}

	if err := s.features.Delete(ctx, id); err != nil {
		logger.Error("failed to delete feature", zap.String("feature_id", id), zap.Error(err))
		s.observer.RecordMutation("delete_feature", metrics.OutcomeError)
		return opError(ErrFeatureDelete, err)
	}
	s.observer.RecordMutation("delete_feature", metrics.OutcomeOK)

	logger.Info("feature deleted", zap.String("feature_id", id))
	return nil
}

// CreateFeature inserts a feature row. Attributes are set later through edit.
func (s *FeatureService) CreateFeature(ctx context.Context, r req.CreateFeatureRequest) (*model.Feature, error) {
	f := &model.Feature{
		Name:        r.Name,
		Description: req.Ref(r.Description),
	}
	if err := s.features.Create(ctx, f); err != nil {
		logger.Error("failed to create feature", zap.String("name", r.Name), zap.Error(err))
		s.observer.RecordMutation("create_feature", metrics.OutcomeError)
		return nil, opError(ErrFeatureCreate, err)
	}
	s.observer.RecordMutation("create_feature", metrics.OutcomeOK)

	logger.Info("feature created", zap.String("feature_id", f.ID))
	return f, nil
}

func (s *FeatureService) Health(ctx context.Context) error {
	return s.features.PingContext(ctx)
}
