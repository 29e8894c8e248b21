package character

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeCharacterRepo struct {
	byID map[uuid.UUID]*Character
}

func newFakeCharacterRepo() *fakeCharacterRepo {
	return &fakeCharacterRepo{byID: make(map[uuid.UUID]*Character)}
}

func (f *fakeCharacterRepo) Create(c *Character) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCharacterRepo) FindByID(id uuid.UUID) (*Character, error) {
	return f.byID[id], nil
}

func (f *fakeCharacterRepo) FindAllByUserID(userID string) ([]*Character, error) {
	var out []*Character
	for _, c := range f.byID {
		if c.UserID.String() == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCharacterRepo) ListPublic(limit int) ([]*Character, error) {
	var out []*Character
	for _, c := range f.byID {
		if c.IsPublic {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCharacterRepo) CountPublic() (int64, error) {
	var count int64
	for _, c := range f.byID {
		if c.IsPublic {
			count++
		}
	}
	return count, nil
}

func (f *fakeCharacterRepo) Update(c *Character) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCharacterRepo) Delete(id uuid.UUID, userID string) error {
	delete(f.byID, id)
	return nil
}

func statsOf(t *testing.T, c *Character) Stats {
	t.Helper()
	var stats Stats
	if err := json.Unmarshal(c.Stats, &stats); err != nil {
		t.Fatalf("Stats do personagem deveriam ser JSON válido: %v", err)
	}
	return stats
}

func TestAwardExperience(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	newCharacter := func(t *testing.T) (CharacterService, *Character) {
		t.Helper()
		repo := newFakeCharacterRepo()
		svc := NewService(repo)
		c, err := svc.Create(ctx, userID, profileID, CreateCharacterDTO{Name: "Aldric", Class: ClassWizard})
		if err != nil {
			t.Fatalf("Create falhou: %v", err)
		}
		return svc, c
	}

	t.Run("StartsAtLevelOne", func(t *testing.T) {
		_, c := newCharacter(t)

		stats := statsOf(t, c)
		if stats.Level != 1 || stats.XP != 0 {
			t.Errorf("Personagem novo deveria começar no nível 1 com 0 XP, tem nível %d e %d XP", stats.Level, stats.XP)
		}
	})

	t.Run("AccumulatesAcrossAttempts", func(t *testing.T) {
		svc, c := newCharacter(t)

		if _, err := svc.AwardExperience(ctx, c.ID, userID.String(), 75); err != nil {
			t.Fatalf("AwardExperience falhou: %v", err)
		}
		updated, err := svc.AwardExperience(ctx, c.ID, userID.String(), 50)
		if err != nil {
			t.Fatalf("AwardExperience falhou: %v", err)
		}

		stats := statsOf(t, updated)
		if stats.XP != 125 {
			t.Errorf("XP esperado 125, recebido %d", stats.XP)
		}
		if stats.Level != 2 {
			t.Errorf("125 XP deveria corresponder ao nível 2, recebido %d", stats.Level)
		}
	})

	t.Run("PerfectScoreIsOneFullLevel", func(t *testing.T) {
		svc, c := newCharacter(t)

		updated, err := svc.AwardExperience(ctx, c.ID, userID.String(), 100)
		if err != nil {
			t.Fatalf("AwardExperience falhou: %v", err)
		}

		if stats := statsOf(t, updated); stats.Level != 2 {
			t.Errorf("100 XP deveria subir para o nível 2, recebido %d", stats.Level)
		}
	})

	t.Run("NegativeXPIsIgnored", func(t *testing.T) {
		svc, c := newCharacter(t)

		updated, err := svc.AwardExperience(ctx, c.ID, userID.String(), -30)
		if err != nil {
			t.Fatalf("AwardExperience falhou: %v", err)
		}

		if stats := statsOf(t, updated); stats.XP != 0 {
			t.Errorf("XP negativo não deveria ser creditado, XP ficou %d", stats.XP)
		}
	})

	t.Run("WrongOwner", func(t *testing.T) {
		svc, c := newCharacter(t)

		_, err := svc.AwardExperience(ctx, c.ID, uuid.NewString(), 50)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Creditar XP a personagem de outro usuário deveria falhar com ErrUnauthorized, falhou com: %v", err)
		}
	})

	t.Run("UnknownCharacter", func(t *testing.T) {
		svc, _ := newCharacter(t)

		_, err := svc.AwardExperience(ctx, uuid.New(), userID.String(), 50)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Personagem inexistente deveria falhar com ErrNotFound, falhou com: %v", err)
		}
	})
}
