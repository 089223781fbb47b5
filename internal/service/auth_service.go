package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"

	"github.com/google/uuid"
)

// Время жизни сессии.
const sessionTTL = 30 * 24 * time.Hour

// OAuthConfig - параметры обмена кода авторизации на данные пользователя.
type OAuthConfig struct {
	TokenURL     string // endpoint обмена кода на access token
	UserInfoURL  string // endpoint получения профиля по access token
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// AuthService отвечает за вход через OAuth-провайдера и сессии пользователей.
type AuthService struct {
	profileRepo *repository.ProfileRepository
	sessionRepo *repository.SessionRepository
	cfg         OAuthConfig
	client      *http.Client
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(profileRepo *repository.ProfileRepository, sessionRepo *repository.SessionRepository, cfg OAuthConfig) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// tokenResponse - ответ провайдера на обмен кода.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// userInfo - данные профиля от провайдера.
type userInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ExchangeCode меняет код авторизации на профиль пользователя: обращается к
// провайдеру, затем находит или создает профиль и открывает сессию.
// Возвращает токен сессии.
func (s *AuthService) ExchangeCode(code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)
	form.Set("redirect_uri", s.cfg.RedirectURL)

	resp, err := s.client.PostForm(s.cfg.TokenURL, form)
	if err != nil {
		return "", fmt.Errorf("ошибка обмена кода авторизации: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("провайдер отклонил код авторизации: статус %d", resp.StatusCode)
	}
	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("некорректный ответ провайдера: %w", err)
	}

	info, err := s.fetchUserInfo(tok.AccessToken)
	if err != nil {
		return "", err
	}
	profile, err := s.getOrCreateProfile(info)
	if err != nil {
		return "", err
	}
	return s.openSession(profile.ID)
}

// fetchUserInfo получает профиль пользователя у провайдера.
func (s *AuthService) fetchUserInfo(accessToken string) (*userInfo, error) {
	req, err := http.NewRequest(http.MethodGet, s.cfg.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса профиля у провайдера: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("провайдер не вернул профиль: статус %d", resp.StatusCode)
	}
	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("некорректный профиль от провайдера: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("провайдер не сообщил email пользователя")
	}
	return &info, nil
}

// getOrCreateProfile находит профиль по email или регистрирует новый.
func (s *AuthService) getOrCreateProfile(info *userInfo) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByEmail(info.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			// Пользователь входит впервые - создаем профиль
			newProfile := &model.Profile{
				Email:     info.Email,
				Nickname:  info.Name,
				AvatarURL: info.Picture,
			}
			id, err := s.profileRepo.Create(newProfile)
			if err != nil {
				return nil, err
			}
			newProfile.ID = id
			return newProfile, nil
		}
		return nil, fmt.Errorf("ошибка при поиске профиля: %w", err)
	}
	return profile, nil
}

// openSession создает новую сессию и возвращает ее токен.
func (s *AuthService) openSession(profileID int) (string, error) {
	session := &model.Session{
		Token:     uuid.NewString(),
		ProfileID: profileID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// Authenticate возвращает ID профиля по токену сессии.
func (s *AuthService) Authenticate(token string) (int, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrUnauthenticated
		}
		return 0, fmt.Errorf("ошибка при поиске сессии: %w", err)
	}
	if session.Expired(time.Now()) {
		return 0, ErrUnauthenticated
	}
	return session.ProfileID, nil
}

// Logout завершает сессию.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.Delete(token)
}

// GetProfile возвращает профиль по ID.
func (s *AuthService) GetProfile(id int) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}
