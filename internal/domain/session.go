package domain

// UserProfile — данные клиента, которыми предзаполняется форма заказа.
type UserProfile struct {
	FullName     string
	Phone        string
	LastAddress  string
	LastLocation *Coordinates
}

// Session — состояние просмотра витрины одним клиентом.
// SelectedCategoryID задан, когда открыта категория второго уровня.
type Session struct {
	ID                 string
	RestaurantID       *int64
	Language           Language
	SelectedCategoryID *int64
	Profile            UserProfile
}

func NewSession(id string, lang Language) *Session {
	return &Session{ID: id, Language: lang}
}
