package helperAuth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"edulink_backend/internals/constants"
)

type fakeStore struct {
	teacher    TeacherRecord
	teacherErr error
	user       UserRecord
	userErr    error

	teacherCalls int
	userCalls    int
}

func (f *fakeStore) FindTeacherByUserID(ctx context.Context, userID uuid.UUID) (TeacherRecord, error) {
	f.teacherCalls++
	return f.teacher, f.teacherErr
}

func (f *fakeStore) FindUserByID(ctx context.Context, userID uuid.UUID) (UserRecord, error) {
	f.userCalls++
	return f.user, f.userErr
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestResolveUserContext(t *testing.T) {
	userID := uuid.New()
	schoolA := uuid.New()
	schoolB := uuid.New()

	tests := []struct {
		name       string
		store      *fakeStore
		wantRole   string
		wantSchool *uuid.UUID
	}{
		{
			name: "teacher record wins over user-with-school",
			store: &fakeStore{
				teacher: TeacherRecord{TeacherID: uuid.New(), SchoolID: ptr(schoolA)},
				user:    UserRecord{UserID: userID, SchoolID: ptr(schoolB)},
			},
			wantRole:   constants.RoleTeacher,
			wantSchool: ptr(schoolA),
		},
		{
			name: "teacher without school still resolves as teacher",
			store: &fakeStore{
				teacher: TeacherRecord{TeacherID: uuid.New()},
			},
			wantRole: constants.RoleTeacher,
		},
		{
			name: "user with school is admin",
			store: &fakeStore{
				teacherErr: ErrRecordNotFound,
				user:       UserRecord{UserID: userID, SchoolID: ptr(schoolB)},
			},
			wantRole:   constants.RoleAdmin,
			wantSchool: ptr(schoolB),
		},
		{
			name: "user without school is plain user",
			store: &fakeStore{
				teacherErr: ErrRecordNotFound,
				user:       UserRecord{UserID: userID},
			},
			wantRole: constants.RoleUser,
		},
		{
			name: "in neither collection: role stays unset",
			store: &fakeStore{
				teacherErr: ErrRecordNotFound,
				userErr:    ErrRecordNotFound,
			},
			wantRole: "",
		},
		{
			name: "teacher probe failure degrades, never panics",
			store: &fakeStore{
				teacherErr: errors.New("network down"),
				user:       UserRecord{UserID: userID, SchoolID: ptr(schoolB)},
			},
			wantRole: "",
		},
		{
			name: "user probe failure degrades to nil school",
			store: &fakeStore{
				teacherErr: ErrRecordNotFound,
				userErr:    errors.New("permission denied"),
			},
			wantRole: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := ResolveUserContext(context.Background(), tt.store, userID)

			if uc.UserID != userID {
				t.Errorf("UserID = %s, want %s", uc.UserID, userID)
			}
			if uc.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", uc.Role, tt.wantRole)
			}
			switch {
			case tt.wantSchool == nil && uc.SchoolID != nil:
				t.Errorf("SchoolID = %s, want nil", *uc.SchoolID)
			case tt.wantSchool != nil && (uc.SchoolID == nil || *uc.SchoolID != *tt.wantSchool):
				t.Errorf("SchoolID = %v, want %s", uc.SchoolID, *tt.wantSchool)
			}
		})
	}
}

func TestResolveUserContextProbeOrder(t *testing.T) {
	store := &fakeStore{
		teacher: TeacherRecord{TeacherID: uuid.New(), SchoolID: ptr(uuid.New())},
	}
	ResolveUserContext(context.Background(), store, uuid.New())

	if store.teacherCalls != 1 {
		t.Errorf("teacher probe ran %d times, want 1", store.teacherCalls)
	}
	// a teacher hit must short-circuit: no read of the users collection
	if store.userCalls != 0 {
		t.Errorf("user probe ran %d times, want 0", store.userCalls)
	}
}

func TestResolveUserContextNilSchoolNormalized(t *testing.T) {
	store := &fakeStore{
		teacherErr: ErrRecordNotFound,
		user:       UserRecord{UserID: uuid.New(), SchoolID: ptr(uuid.Nil)},
	}
	uc := ResolveUserContext(context.Background(), store, uuid.New())
	if uc.Role != constants.RoleUser {
		t.Errorf("Role = %q, want user (nil-uuid school must not count)", uc.Role)
	}
	if uc.SchoolID != nil {
		t.Errorf("SchoolID = %v, want nil", uc.SchoolID)
	}
}
