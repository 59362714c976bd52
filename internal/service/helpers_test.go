package service

import (
	"database/sql"
	"testing"

	"hearthplan/internal/repository"
	"hearthplan/internal/testutil"
)

type testRepos struct {
	db          *sql.DB
	members     *repository.SQLiteMemberRepo
	goals       *repository.SQLiteGoalRepo
	commitments *repository.SQLiteCommitmentRepo
	schedules   *repository.SQLiteScheduleRepo
	blocks      *repository.SQLiteBlockRepo
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testRepos{
		db:          database,
		members:     repository.NewSQLiteMemberRepo(database),
		goals:       repository.NewSQLiteGoalRepo(database),
		commitments: repository.NewSQLiteCommitmentRepo(database),
		schedules:   repository.NewSQLiteScheduleRepo(database),
		blocks:      repository.NewSQLiteBlockRepo(database),
	}
}
