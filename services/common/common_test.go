package common

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	return gormDB, mock
}

func TestAuthorize(t *testing.T) {
	t.Run("Unregistered sender", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, status := Authorize(db, 7, -100200)
		if status != StatusNotRegistered {
			t.Errorf("Expected StatusNotRegistered, got %v", status)
		}
		if user != nil {
			t.Errorf("Expected nil user, got %+v", user)
		}
	})

	t.Run("Wrong group", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "group_id"}).
				AddRow(7, "-100999"))
		mock.ExpectQuery("SELECT \\* FROM `inventory_items`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description"}))

		user, status := Authorize(db, 7, -100200)
		if status != StatusWrongGroup {
			t.Errorf("Expected StatusWrongGroup, got %v", status)
		}
		if user == nil {
			t.Error("Wrong-group denial should still return the record")
		}
	})

	t.Run("Bound to this chat", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "group_id", "username"}).
				AddRow(7, "-100200", "captain"))
		mock.ExpectQuery("SELECT \\* FROM `inventory_items`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description"}).
				AddRow(1, 7, "Pistol", "Grants +1 attack power."))

		user, status := Authorize(db, 7, -100200)
		if status != StatusOK {
			t.Fatalf("Expected StatusOK, got %v", status)
		}
		if user.Username != "captain" || len(user.Inventory) != 1 {
			t.Errorf("Unexpected user: %+v", user)
		}
	})
}
