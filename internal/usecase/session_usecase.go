package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// SessionUseCase управляет выбором ресторана и профилем клиента.
type SessionUseCase struct {
	sessions    SessionRepository
	carts       CartRepository
	backend     BackendCatalogAPI
	logger      logger.Logger
	defaultLang domain.Language
}

func NewSessionUC(
	sessions SessionRepository,
	carts CartRepository,
	backend BackendCatalogAPI,
	logger logger.Logger,
	defaultLang domain.Language,
) *SessionUseCase {
	return &SessionUseCase{
		sessions:    sessions,
		carts:       carts,
		backend:     backend,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

func (s *SessionUseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	const op = "SessionUseCase.GetSession"

	session, err := loadOrCreateSession(ctx, s.sessions, s.logger, sessionID, s.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// SelectRestaurant делает ресторан активным. Корзина очищается только при смене
// уже выбранного ресторана на другой; первый выбор корзину не трогает.
func (s *SessionUseCase) SelectRestaurant(ctx context.Context, sessionID string, restaurantID int64) (*domain.Session, error) {
	const op = "SessionUseCase.SelectRestaurant"

	if restaurantID <= 0 {
		return nil, e.Wrap(op, e.NewValidationError("restaurant_id", e.ErrMissingFields))
	}

	if _, err := s.backend.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, e.Wrap(op, err)
	}

	session, err := loadOrCreateSession(ctx, s.sessions, s.logger, sessionID, s.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	switching := session.RestaurantID != nil && *session.RestaurantID != restaurantID
	if switching {
		if err := s.carts.Delete(ctx, sessionID); err != nil {
			return nil, e.Wrap(op, err)
		}
		s.logger.Debugf("session %s switched restaurant %d -> %d, cart cleared", sessionID, *session.RestaurantID, restaurantID)
	}

	if switching || session.RestaurantID == nil {
		session.SelectedCategoryID = nil
	}
	session.RestaurantID = &restaurantID

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// UpdateProfile сохраняет данные клиента для предзаполнения формы заказа.
func (s *SessionUseCase) UpdateProfile(ctx context.Context, sessionID string, profile domain.UserProfile) (*domain.Session, error) {
	const op = "SessionUseCase.UpdateProfile"

	if profile.LastLocation != nil {
		if err := profile.LastLocation.Validate(); err != nil {
			return nil, e.Wrap(op, e.NewValidationError("last_location", err))
		}
	}

	session, err := loadOrCreateSession(ctx, s.sessions, s.logger, sessionID, s.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	session.Profile = domain.UserProfile{
		FullName:     strings.TrimSpace(profile.FullName),
		Phone:        strings.TrimSpace(profile.Phone),
		LastAddress:  strings.TrimSpace(profile.LastAddress),
		LastLocation: profile.LastLocation,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// loadOrCreateSession возвращает сессию из хранилища или новую пустую.
func loadOrCreateSession(
	ctx context.Context,
	repo SessionRepository,
	log logger.Logger,
	sessionID string,
	lang domain.Language,
) (*domain.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, e.ErrSessionRequired
	}

	session, err := repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		log.Debugf("new storefront session %s", sessionID)
		return domain.NewSession(sessionID, lang), nil
	}

	return session, nil
}
