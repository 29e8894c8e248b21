package character

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"gorm.io/datatypes"
)

var (
	ErrNotFound     = errors.New("character not found")
	ErrUnauthorized = errors.New("character does not belong to user")
)

// XP acumulado por nível. A pontuação de uma tentativa (0–100) entra
// direto como XP, então um quiz perfeito vale um nível inteiro.
const xpPerLevel = 100

type CharacterService interface {
	Create(ctx context.Context, userID, profileID uuid.UUID, dto CreateCharacterDTO) (*Character, error)
	List(ctx context.Context, userID string) ([]*Character, error)
	Get(ctx context.Context, id uuid.UUID, userID string) (*Character, error)
	Update(ctx context.Context, id uuid.UUID, userID string, dto UpdateCharacterDTO) (*Character, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error

	AwardExperience(ctx context.Context, id uuid.UUID, userID string, xp int) (*Character, error)
}

type characterService struct {
	repo CharacterRepository
}

func NewService(repo CharacterRepository) CharacterService {
	return &characterService{repo: repo}
}

func decodeStats(raw datatypes.JSON) Stats {
	var stats Stats
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &stats)
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	return stats
}

func encodeStats(stats Stats) datatypes.JSON {
	raw, _ := json.Marshal(stats)
	return datatypes.JSON(raw)
}

func (s *characterService) Create(ctx context.Context, userID, profileID uuid.UUID, dto CreateCharacterDTO) (*Character, error) {
	log := config.WithContext(ctx)
	log.Info("Criando novo personagem...")

	c := &Character{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: profileID,
		Name:      dto.Name,
		Class:     dto.Class,
		Health:    100,
		Stats:     encodeStats(Stats{Level: 1, XP: 0}),
		Inventory: datatypes.JSON([]byte("[]")),
		IsPublic:  dto.IsPublic,
	}

	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Erro ao criar personagem")
		return nil, err
	}

	log.Info("Personagem criado com sucesso", "character_id", c.ID.String())
	return c, nil
}

func (s *characterService) List(ctx context.Context, userID string) ([]*Character, error) {
	log := config.WithContext(ctx)

	characters, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar personagens do usuário")
		return nil, err
	}
	return characters, nil
}

func (s *characterService) Get(ctx context.Context, id uuid.UUID, userID string) (*Character, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID.String() != userID && !c.IsPublic {
		return nil, ErrUnauthorized
	}
	return c, nil
}

func (s *characterService) Update(ctx context.Context, id uuid.UUID, userID string, dto UpdateCharacterDTO) (*Character, error) {
	log := config.WithContext(ctx)

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Class != nil {
		c.Class = *dto.Class
	}
	if dto.IsPublic != nil {
		c.IsPublic = *dto.IsPublic
	}

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Erro ao atualizar personagem")
		return nil, err
	}
	return c, nil
}

func (s *characterService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	log := config.WithContext(ctx)
	log.Info("Deletando personagem...", "character_id", id.String())

	return s.repo.Delete(id, userID)
}

// AwardExperience credita o XP de uma tentativa de quiz ao personagem.
func (s *characterService) AwardExperience(ctx context.Context, id uuid.UUID, userID string, xp int) (*Character, error) {
	log := config.WithContext(ctx)

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID.String() != userID {
		return nil, ErrUnauthorized
	}

	if xp < 0 {
		xp = 0
	}

	stats := decodeStats(c.Stats)
	stats.XP += xp
	stats.Level = stats.XP/xpPerLevel + 1
	c.Stats = encodeStats(stats)

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Erro ao creditar experiência ao personagem")
		return nil, err
	}

	log.Info("Experiência creditada", "character_id", c.ID.String(), "xp", stats.XP, "level", stats.Level)
	return c, nil
}
