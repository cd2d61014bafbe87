package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/jask/rosterpick/internal/catalog"
)

// CharacterRepo stores catalog characters and their poses, skins and abilities.
type CharacterRepo struct {
	db *sql.DB
}

func NewCharacterRepo(db *sql.DB) *CharacterRepo { return &CharacterRepo{db: db} }

// Upsert writes entities in one transaction. Existing characters keep their catalog
// position; new ones are appended after the last one.
func (r *CharacterRepo) Upsert(ctx context.Context, entities ...catalog.Entity) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return upsertAll(ctx, tx, entities)
	})
}

// withTx runs fn in a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsertAll(ctx context.Context, tx *sql.Tx, entities []catalog.Entity) error {
	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM characters`).Scan(&next); err != nil {
		return err
	}
	for _, e := range entities {
		if e.ID == "" {
			return fmt.Errorf("character %q has no id", e.Name)
		}
		rarity := e.Rarity
		if rarity == catalog.RarityAny {
			rarity = catalog.RarityCommon
		}
		_, err := tx.ExecContext(ctx, `
		INSERT INTO characters(
		 id, position, name, class, rarity, element, faction, unlocked, popularity, power,
		 health, attack, defense, speed, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		 name=excluded.name,
		 class=excluded.class,
		 rarity=excluded.rarity,
		 element=excluded.element,
		 faction=excluded.faction,
		 unlocked=excluded.unlocked,
		 popularity=excluded.popularity,
		 power=excluded.power,
		 health=excluded.health,
		 attack=excluded.attack,
		 defense=excluded.defense,
		 speed=excluded.speed,
		 difficulty=excluded.difficulty,
		 updated_at=datetime('now');
		`, e.ID, next, e.Name, e.Class, rarity.String(), e.Element, e.Faction, e.Unlocked, e.Popularity, e.Power,
			e.Stats.Health, e.Stats.Attack, e.Stats.Defense, e.Stats.Speed, e.Stats.Difficulty)
		if err != nil {
			return fmt.Errorf("upsert character %s: %w", e.ID, err)
		}
		next++
		if err := replaceChildren(ctx, tx, e); err != nil {
			return fmt.Errorf("upsert character %s: %w", e.ID, err)
		}
	}
	return nil
}

func replaceChildren(ctx context.Context, tx *sql.Tx, e catalog.Entity) error {
	for _, table := range []string{"character_poses", "character_skins", "character_abilities"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE character_id = ?`, e.ID); err != nil {
			return err
		}
	}
	for i, p := range e.Poses {
		if _, err := tx.ExecContext(ctx, `INSERT INTO character_poses(character_id, idx, name) VALUES (?, ?, ?)`, e.ID, i, p); err != nil {
			return err
		}
	}
	for i, s := range e.Skins {
		if _, err := tx.ExecContext(ctx, `INSERT INTO character_skins(character_id, idx, name) VALUES (?, ?, ?)`, e.ID, i, s); err != nil {
			return err
		}
	}
	for i, a := range e.Abilities {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("ability:"+e.ID+":"+strconv.Itoa(i))).String()
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO character_abilities(id, character_id, idx, hotkey, name, type, cooldown, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, e.ID, i, a.Key, a.Name, a.Type.String(), a.Cooldown, a.Description); err != nil {
			return err
		}
	}
	return nil
}

// List returns every character in catalog order.
func (r *CharacterRepo) List(ctx context.Context) ([]catalog.Entity, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, class, rarity, element, faction, unlocked, popularity, power,
	 health, attack, defense, speed, difficulty
	FROM characters ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Entity
	index := map[string]int{}
	for rows.Next() {
		var e catalog.Entity
		var rarity string
		if err := rows.Scan(&e.ID, &e.Name, &e.Class, &rarity, &e.Element, &e.Faction, &e.Unlocked,
			&e.Popularity, &e.Power, &e.Stats.Health, &e.Stats.Attack, &e.Stats.Defense,
			&e.Stats.Speed, &e.Stats.Difficulty); err != nil {
			return nil, err
		}
		e.Rarity, err = catalog.ParseRarity(rarity)
		if err != nil || e.Rarity == catalog.RarityAny {
			e.Rarity = catalog.RarityCommon
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachNames(ctx, `SELECT character_id, name FROM character_poses ORDER BY character_id, idx`, index, func(i int, name string) {
		out[i].Poses = append(out[i].Poses, name)
	}); err != nil {
		return nil, err
	}
	if err := r.attachNames(ctx, `SELECT character_id, name FROM character_skins ORDER BY character_id, idx`, index, func(i int, name string) {
		out[i].Skins = append(out[i].Skins, name)
	}); err != nil {
		return nil, err
	}
	if err := r.attachAbilities(ctx, index, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CharacterRepo) attachNames(ctx context.Context, query string, index map[string]int, add func(int, string)) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			add(i, name)
		}
	}
	return rows.Err()
}

func (r *CharacterRepo) attachAbilities(ctx context.Context, index map[string]int, out []catalog.Entity) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT character_id, hotkey, name, type, cooldown, description
	FROM character_abilities ORDER BY character_id, idx`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id, typ string
		var a catalog.Ability
		if err := rows.Scan(&id, &a.Key, &a.Name, &typ, &a.Cooldown, &a.Description); err != nil {
			return err
		}
		a.Type, _ = catalog.ParseAbilityType(typ)
		if i, ok := index[id]; ok {
			out[i].Abilities = append(out[i].Abilities, a)
		}
	}
	return rows.Err()
}

func (r *CharacterRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n)
	return n, err
}

// Delete removes a character and, through the foreign keys, its child rows.
func (r *CharacterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	return err
}
