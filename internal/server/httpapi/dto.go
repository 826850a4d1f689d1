package httpapi

import (
	"time"

	"github.com/daybookapp/daybook/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type sessionResponse struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type entryRequest struct {
	Date       string   `json:"date" validate:"required"`
	Content    string   `json:"content"`
	Mood       string   `json:"mood"`
	Weather    string   `json:"weather"`
	Images     []string `json:"images"`
	AudioNotes []string `json:"audioNotes"`
}

type entryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Content    string    `json:"content"`
	Mood       string    `json:"mood,omitempty"`
	Weather    string    `json:"weather,omitempty"`
	Images     []string  `json:"images,omitempty"`
	AudioNotes []string  `json:"audioNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toEntryResponse(e *models.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Date:       e.Date,
		Content:    e.Content,
		Mood:       e.Mood,
		Weather:    e.Weather,
		Images:     e.Images,
		AudioNotes: e.AudioNotes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type settingsDTO struct {
	Theme           string `json:"theme"`
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontFamily      string `json:"fontFamily"`
	FontSize        string `json:"fontSize"`
	BackgroundType  string `json:"backgroundType"`
	BackgroundValue string `json:"backgroundValue"`
	BackgroundBlur  int    `json:"backgroundBlur" validate:"min=0,max=40"`
}

func toSettingsDTO(s *models.Settings) settingsDTO {
	return settingsDTO{
		Theme:           s.Theme,
		PrimaryColor:    s.PrimaryColor,
		AccentColor:     s.AccentColor,
		BackgroundColor: s.BackgroundColor,
		FontFamily:      s.FontFamily,
		FontSize:        s.FontSize,
		BackgroundType:  s.BackgroundType,
		BackgroundValue: s.BackgroundValue,
		BackgroundBlur:  s.BackgroundBlur,
	}
}

func (d settingsDTO) toModel() *models.Settings {
	return &models.Settings{
		Theme:           d.Theme,
		PrimaryColor:    d.PrimaryColor,
		AccentColor:     d.AccentColor,
		BackgroundColor: d.BackgroundColor,
		FontFamily:      d.FontFamily,
		FontSize:        d.FontSize,
		BackgroundType:  d.BackgroundType,
		BackgroundValue: d.BackgroundValue,
		BackgroundBlur:  d.BackgroundBlur,
	}
}

type presignPutRequest struct {
	ContentType string `json:"contentType"`
}

type presignPutResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type presignGetResponse struct {
	URL string `json:"url"`
}

type inviteResponse struct {
	Code string `json:"code"`
}

type acceptInviteRequest struct {
	Code string `json:"code" validate:"required"`
}

type partnerResponse struct {
	Username string `json:"username"`
}
