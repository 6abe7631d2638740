package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
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

func groupChat(id int64) *tgbotapi.Chat {
	return &tgbotapi.Chat{ID: id, Type: "group"}
}

func TestLinkTeam(t *testing.T) {
	t.Run("Refuses private chats", func(t *testing.T) {
		db, _ := newMockDB(t)
		reply, err := LinkTeam(db, &tgbotapi.Chat{ID: 1, Type: "private"}, "3")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if reply != "❌ Must run in a group." {
			t.Errorf("Unexpected reply: %q", reply)
		}
	})

	t.Run("Requires a numeric team id", func(t *testing.T) {
		db, _ := newMockDB(t)
		for _, args := range []string{"", "abc", "-1"} {
			reply, err := LinkTeam(db, groupChat(-100), args)
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", args, err)
			}
			if reply != "⚠️ Usage: /init <team_id>" {
				t.Errorf("Args %q: unexpected reply %q", args, reply)
			}
		}
	})

	t.Run("Unknown team", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "team_id"}))

		reply, err := LinkTeam(db, groupChat(-100), "5")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if reply != "❌ No team #5." {
			t.Errorf("Unexpected reply: %q", reply)
		}
	})

	t.Run("Already linked team keeps its binding", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "team_id", "team_name", "group_id"}).
				AddRow(7, 3, "Corsairs", "-100999"))

		reply, err := LinkTeam(db, groupChat(-100200), "3")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if reply != "❌ Already linked to -100999." {
			t.Errorf("Unexpected reply: %q", reply)
		}
		// No UPDATE was expected: the first binding must survive.
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Binds an unlinked team", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "team_id", "team_name", "group_id"}).
				AddRow(7, 3, "Corsairs", ""))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `users` SET `group_id`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		reply, err := LinkTeam(db, groupChat(-100200), "3")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if reply != "✅ Linked team *Corsairs* to this group." {
			t.Errorf("Unexpected reply: %q", reply)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}
