package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhaodong-liu/Fantasy-Sports-League/containers"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
)

// TestDB wraps a postgres test container with both the gateway and a raw
// pool. The raw pool is for seeding rows the gateway has no insert for
// (leagues, matches, waivers).
type TestDB struct {
	container *containers.DBContainer
	pool      *pgxpool.Pool
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()

	c := clock.NewMock()
	c.Set(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))

	gateway, err := db.New(context.Background(), container.ConnectionString(), c)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), container.ConnectionString())
	if err != nil {
		log.Fatalf("error opening seed pool: %v", err)
	}

	return &TestDB{
		container: container,
		pool:      pool,
		DB:        gateway,
		Clock:     c,
	}
}

func (db *TestDB) Shutdown() {
	db.pool.Close()
	db.container.Shutdown()
}

// Exec runs a raw statement against the container, for seeding data in
// tests. Any error is fatal.
func (db *TestDB) Exec(sql string, args ...any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.pool.Exec(ctx, sql, args...); err != nil {
		log.Fatalf("error seeding test data: %v", err)
	}
}

// QueryRowID runs a raw INSERT ... RETURNING and returns the generated id.
func (db *TestDB) QueryRowID(sql string, args ...any) int32 {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id int32
	if err := db.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		log.Fatalf("error seeding test data: %v", err)
	}
	return id
}

// Fixtures are the ids of the rows inserted by SeedFixtures.
type Fixtures struct {
	AdminID  int32
	UserID   int32
	LeagueID int32
	TeamA    int32
	TeamB    int32
	PlayerA  int32
	PlayerB  int32
	MatchID  int32
	WaiverID int32
}

// SeedFixtures inserts a small football league: two users, two teams,
// two rostered players, one match with events, and one pending waiver.
func (db *TestDB) SeedFixtures() *Fixtures {
	f := &Fixtures{}

	f.AdminID = db.QueryRowID(
		`INSERT INTO users (full_name, email, user_name, pwd, position)
		 VALUES ('Ada Admin', 'ada@example.com', 'ada', 'x', 'A') RETURNING user_id`)
	f.UserID = db.QueryRowID(
		`INSERT INTO users (full_name, email, user_name, pwd, position)
		 VALUES ('Uma User', 'uma@example.com', 'uma', 'x', 'U') RETURNING user_id`)

	f.LeagueID = db.QueryRowID(
		`INSERT INTO leagues (league_name, league_type, sport, max_number)
		 VALUES ('Sunday League', 'Public', 'FTB', 10) RETURNING league_id`)

	db.Exec(`INSERT INTO teams (team_id, team_name, manager, league_id, total_points, league_ranking, team_status, sport)
		 VALUES (1, 'Thunderbolts', $1, $2, 120.50, 1, 'A', 'FTB')`, f.AdminID, f.LeagueID)
	db.Exec(`INSERT INTO teams (team_id, team_name, manager, league_id, total_points, league_ranking, team_status, sport)
		 VALUES (2, 'Ironsides', $1, $2, 98.25, 2, 'A', 'FTB')`, f.UserID, f.LeagueID)
	f.TeamA = 1
	f.TeamB = 2

	f.PlayerA = db.QueryRowID(
		`INSERT INTO players (full_name, sport, position, real_team, team_id, fantasy_points, avai_status)
		 VALUES ('Pat Quarter', 'FTB', 'QB', 'Hawks', 1, 88.00, 'A') RETURNING player_id`)
	f.PlayerB = db.QueryRowID(
		`INSERT INTO players (full_name, sport, position, real_team, team_id, fantasy_points, avai_status)
		 VALUES ('Randy Runner', 'FTB', 'RB', 'Bears', 2, 74.50, 'A') RETURNING player_id`)

	f.MatchID = db.QueryRowID(
		`INSERT INTO matches (sport, match_date, home_team, away_team, venue)
		 VALUES ('FTB', '2024-09-08', 'Thunderbolts', 'Ironsides', 'Central Field') RETURNING match_id`)
	db.Exec(`INSERT INTO match_events (match_id, player_id, event_type, event_time)
		 VALUES ($1, $2, 'Touchdown', 12), ($1, $3, 'Fumble', 35)`, f.MatchID, f.PlayerA, f.PlayerB)

	waiverPlayer := db.QueryRowID(
		`INSERT INTO players (full_name, sport, position, real_team, fantasy_points, avai_status)
		 VALUES ('Wally Waiver', 'FTB', 'WR', 'Lions', 41.75, 'A') RETURNING player_id`)
	f.WaiverID = db.QueryRowID(
		`INSERT INTO waivers (player_id, team_id, waiver_status, request_date)
		 VALUES ($1, 2, 'P', '2024-08-28') RETURNING waiver_id`, waiverPlayer)

	return f
}
