// Package helperAuth resolves who the caller is: their role and which
// school (tenant) scopes every query they are allowed to make.
package helperAuth

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
)

// UserContext is the resolved caller identity the rest of the app consumes.
// Role may be empty (principal exists but is in neither collection) and
// SchoolID may be nil (generic user with no school attached).
type UserContext struct {
	UserID   uuid.UUID
	Role     string
	SchoolID *uuid.UUID
}

// TeacherRecord / UserRecord are the two authorization documents a
// principal may be keyed under.
type TeacherRecord struct {
	TeacherID uuid.UUID
	SchoolID  *uuid.UUID
}

type UserRecord struct {
	UserID   uuid.UUID
	SchoolID *uuid.UUID
}

var ErrRecordNotFound = errors.New("record not found")

// ContextStore performs the two point reads behind context resolution.
type ContextStore interface {
	FindTeacherByUserID(ctx context.Context, userID uuid.UUID) (TeacherRecord, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (UserRecord, error)
}

// ResolveUserContext probes the teachers collection first, then users.
// The order is policy, not accident: an account that is somehow both
// resolves as teacher. Lookup failures are logged and degrade to an empty
// role with a nil school id; the caller gets a usable (if powerless)
// context rather than an error.
func ResolveUserContext(ctx context.Context, store ContextStore, userID uuid.UUID) UserContext {
	uc := UserContext{UserID: userID}

	t, err := store.FindTeacherByUserID(ctx, userID)
	switch {
	case err == nil:
		uc.Role = constants.RoleTeacher
		uc.SchoolID = normalizeSchoolID(t.SchoolID)
		return uc
	case !errors.Is(err, ErrRecordNotFound):
		log.Printf("[ERROR] teacher probe for %s: %v", userID, err)
		return uc
	}

	u, err := store.FindUserByID(ctx, userID)
	switch {
	case err == nil:
		uc.Role, uc.SchoolID = roleFromUserRecord(u.SchoolID)
		return uc
	case !errors.Is(err, ErrRecordNotFound):
		log.Printf("[ERROR] user probe for %s: %v", userID, err)
		return uc
	}

	// in neither collection: role stays unset
	return uc
}

// roleFromUserRecord maps a users-collection hit to a role. A user record
// with a school attached is an admin of that school; without one it is a
// plain user with no tenant scope.
func roleFromUserRecord(schoolID *uuid.UUID) (string, *uuid.UUID) {
	if id := normalizeSchoolID(schoolID); id != nil {
		return constants.RoleAdmin, id
	}
	return constants.RoleUser, nil
}

func normalizeSchoolID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

/* ===============================
   GORM-backed store
=================================*/

type GormContextStore struct {
	DB *gorm.DB
}

func (s GormContextStore) FindTeacherByUserID(ctx context.Context, userID uuid.UUID) (TeacherRecord, error) {
	var row struct {
		TeacherID       uuid.UUID  `gorm:"column:teacher_id"`
		TeacherSchoolID *uuid.UUID `gorm:"column:teacher_school_id"`
	}
	err := s.DB.WithContext(ctx).
		Table("teachers").
		Select("teacher_id, teacher_school_id").
		Where("teacher_user_id = ? AND teacher_deleted_at IS NULL", userID).
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TeacherRecord{}, ErrRecordNotFound
	}
	if err != nil {
		return TeacherRecord{}, err
	}
	return TeacherRecord{TeacherID: row.TeacherID, SchoolID: row.TeacherSchoolID}, nil
}

func (s GormContextStore) FindUserByID(ctx context.Context, userID uuid.UUID) (UserRecord, error) {
	var row struct {
		UserID       uuid.UUID  `gorm:"column:user_id"`
		UserSchoolID *uuid.UUID `gorm:"column:user_school_id"`
	}
	err := s.DB.WithContext(ctx).
		Table("users").
		Select("user_id, user_school_id").
		Where("user_id = ? AND user_deleted_at IS NULL", userID).
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserRecord{}, ErrRecordNotFound
	}
	if err != nil {
		return UserRecord{}, err
	}
	return UserRecord{UserID: row.UserID, SchoolID: row.UserSchoolID}, nil
}
