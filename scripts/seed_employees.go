// seed_employees.go — standalone script to create the talent directory schema
// and load a small deterministic sample population.
//
// Usage:
//
//	go run scripts/seed_employees.go -db postgres://localhost:5432/talentmatch -truncate
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS dim_positions (
		position_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS dim_grades (
		grade_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS dim_directorates (
		directorate_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id TEXT PRIMARY KEY,
		fullname TEXT NOT NULL,
		position_id INT REFERENCES dim_positions(position_id),
		grade_id INT REFERENCES dim_grades(grade_id),
		directorate_id INT REFERENCES dim_directorates(directorate_id),
		tenure_months DOUBLE PRECISION,
		education TEXT,
		major TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS profiles_psych (
		employee_id TEXT PRIMARY KEY REFERENCES employees(employee_id),
		mbti TEXT,
		disc TEXT,
		iq DOUBLE PRECISION,
		gtq DOUBLE PRECISION,
		pauli DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS strengths (
		employee_id TEXT REFERENCES employees(employee_id),
		rank INT NOT NULL,
		theme TEXT NOT NULL,
		domain TEXT NOT NULL,
		PRIMARY KEY (employee_id, rank)
	)`,
	`CREATE TABLE IF NOT EXISTS performance_yearly (
		employee_id TEXT REFERENCES employees(employee_id),
		year INT NOT NULL,
		rating INT NOT NULL,
		PRIMARY KEY (employee_id, year)
	)`,
	`CREATE TABLE IF NOT EXISTS competencies_yearly (
		employee_id TEXT REFERENCES employees(employee_id),
		year INT NOT NULL,
		pillar_code TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (employee_id, year, pillar_code)
	)`,
}

var truncateOrder = []string{
	"competencies_yearly", "performance_yearly", "strengths",
	"profiles_psych", "employees",
	"dim_positions", "dim_grades", "dim_directorates",
}

type sampleEmployee struct {
	id, name                 string
	position, grade, dirName string
	tenure                   float64
	education, major         string
	mbti, disc               string
	iq, gtq, pauli           float64
	theme, domain            string
	rating                   int
	competencies             map[string]float64
}

var sampleEmployees = []sampleEmployee{
	{
		id: "EMP001", name: "Andi Prasetyo",
		position: "Data Analyst", grade: "III", dirName: "Technology",
		tenure: 72, education: "Bachelor", major: "Statistics",
		mbti: "INTJ", disc: "Conscientiousness",
		iq: 118, gtq: 112, pauli: 78,
		theme: "Analytical", domain: "Strategic Thinking",
		rating: 5,
		competencies: map[string]float64{
			"SEA": 5, "QDD": 5, "FTC": 4, "IDS": 4,
			"VCU": 5, "STO_LIE": 4, "CSI": 4, "CEX_GDR": 5,
		},
	},
	{
		id: "EMP002", name: "Budi Santoso",
		position: "Data Analyst", grade: "III", dirName: "Technology",
		tenure: 60, education: "Bachelor", major: "Computer Science",
		mbti: "ENTJ", disc: "Dominance",
		iq: 110, gtq: 108, pauli: 70,
		theme: "Achiever", domain: "Executing",
		rating: 4,
		competencies: map[string]float64{
			"SEA": 4, "QDD": 4, "FTC": 4, "IDS": 3,
			"VCU": 4, "STO_LIE": 3, "CSI": 4, "CEX_GDR": 4,
		},
	},
	{
		id: "EMP003", name: "Citra Lestari",
		position: "Product Manager", grade: "IV", dirName: "Commerce",
		tenure: 96, education: "Master", major: "Business Administration",
		mbti: "ENFJ", disc: "Influence",
		iq: 115, gtq: 105, pauli: 65,
		theme: "Communication", domain: "Influencing",
		rating: 5,
		competencies: map[string]float64{
			"SEA": 4, "QDD": 3, "FTC": 5, "IDS": 5,
			"VCU": 4, "STO_LIE": 5, "CSI": 5, "CEX_GDR": 4,
		},
	},
	{
		id: "EMP004", name: "Dewi Anggraini",
		position: "Data Analyst", grade: "II", dirName: "Technology",
		tenure: 36, education: "Bachelor", major: "Mathematics",
		mbti: "ISTJ", disc: "Steadiness",
		iq: 105, gtq: 100, pauli: 60,
		theme: "Deliberative", domain: "Executing",
		rating: 3,
		competencies: map[string]float64{
			"SEA": 3, "QDD": 4, "FTC": 3, "IDS": 3,
			"VCU": 3, "STO_LIE": 3, "CSI": 3, "CEX_GDR": 3,
		},
	},
	{
		id: "EMP005", name: "Eko Wijaya",
		position: "Software Engineer", grade: "III", dirName: "Technology",
		tenure: 48, education: "Bachelor", major: "Computer Science",
		mbti: "INTP", disc: "Conscientiousness",
		iq: 120, gtq: 115, pauli: 72,
		theme: "Learner", domain: "Strategic Thinking",
		rating: 4,
		competencies: map[string]float64{
			"SEA": 4, "QDD": 5, "FTC": 3, "IDS": 4,
			"VCU": 4, "STO_LIE": 3, "CSI": 4, "CEX_GDR": 3,
		},
	},
	{
		id: "EMP006", name: "Fitri Handayani",
		position: "HR Specialist", grade: "II", dirName: "People",
		tenure: 24, education: "Bachelor", major: "Psychology",
		mbti: "ESFJ", disc: "Influence",
		iq: 102, gtq: 98, pauli: 55,
		theme: "Harmony", domain: "Relationship Building",
		rating: 4,
		competencies: map[string]float64{
			"SEA": 3, "QDD": 3, "FTC": 4, "IDS": 4,
			"VCU": 3, "STO_LIE": 4, "CSI": 4, "CEX_GDR": 4,
		},
	},
	{
		id: "EMP007", name: "Gilang Ramadhan",
		position: "Data Analyst", grade: "III", dirName: "Finance",
		tenure: 84, education: "Master", major: "Statistics",
		mbti: "INTJ", disc: "Conscientiousness",
		iq: 116, gtq: 110, pauli: 75,
		theme: "Analytical", domain: "Strategic Thinking",
		rating: 5,
		competencies: map[string]float64{
			"SEA": 5, "QDD": 4, "FTC": 4, "IDS": 4,
			"VCU": 5, "STO_LIE": 4, "CSI": 3, "CEX_GDR": 4,
		},
	},
	{
		id: "EMP008", name: "Hana Pertiwi",
		position: "Software Engineer", grade: "II", dirName: "Technology",
		tenure: 18, education: "Bachelor", major: "Informatics",
		mbti: "ISFP", disc: "Steadiness",
		iq: 108, gtq: 104, pauli: 62,
		theme: "Adaptability", domain: "Relationship Building",
		rating: 3,
		competencies: map[string]float64{
			"SEA": 3, "QDD": 3, "FTC": 3, "IDS": 2,
			"VCU": 3, "STO_LIE": 2, "CSI": 3, "CEX_GDR": 3,
		},
	},
}

const assessmentYear = 2025

func main() {
	dbURL := flag.String("db", os.Getenv("TALENTMATCH_DATABASE_URL"), "database URL")
	truncate := flag.Bool("truncate", false, "truncate existing rows before seeding")
	flag.Parse()

	if *dbURL == "" {
		log.Fatal("no database URL: pass -db or set TALENTMATCH_DATABASE_URL")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			log.Fatalf("create schema: %v", err)
		}
	}

	if *truncate {
		for _, table := range truncateOrder {
			if _, err := conn.Exec(ctx, "TRUNCATE "+table+" CASCADE"); err != nil {
				log.Fatalf("truncate %s: %v", table, err)
			}
		}
	}

	if err := seed(ctx, conn); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("seeded %d employees\n", len(sampleEmployees))
}

func seed(ctx context.Context, conn *pgx.Conn) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	dimID := func(table, idCol, name string) (int, error) {
		var id int
		err := tx.QueryRow(ctx, fmt.Sprintf(
			`INSERT INTO %s (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING %s`, table, idCol), name).Scan(&id)
		return id, err
	}

	for _, e := range sampleEmployees {
		posID, err := dimID("dim_positions", "position_id", e.position)
		if err != nil {
			return fmt.Errorf("position %s: %w", e.position, err)
		}
		gradeID, err := dimID("dim_grades", "grade_id", e.grade)
		if err != nil {
			return fmt.Errorf("grade %s: %w", e.grade, err)
		}
		dirID, err := dimID("dim_directorates", "directorate_id", e.dirName)
		if err != nil {
			return fmt.Errorf("directorate %s: %w", e.dirName, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO employees (employee_id, fullname, position_id, grade_id, directorate_id, tenure_months, education, major)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (employee_id) DO NOTHING`,
			e.id, e.name, posID, gradeID, dirID, e.tenure, e.education, e.major)
		if err != nil {
			return fmt.Errorf("employee %s: %w", e.id, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles_psych (employee_id, mbti, disc, iq, gtq, pauli)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (employee_id) DO NOTHING`,
			e.id, e.mbti, e.disc, e.iq, e.gtq, e.pauli)
		if err != nil {
			return fmt.Errorf("psych profile %s: %w", e.id, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO strengths (employee_id, rank, theme, domain)
			VALUES ($1, 1, $2, $3)
			ON CONFLICT (employee_id, rank) DO NOTHING`,
			e.id, e.theme, e.domain)
		if err != nil {
			return fmt.Errorf("strengths %s: %w", e.id, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO performance_yearly (employee_id, year, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (employee_id, year) DO NOTHING`,
			e.id, assessmentYear, e.rating)
		if err != nil {
			return fmt.Errorf("performance %s: %w", e.id, err)
		}

		for code, score := range e.competencies {
			_, err = tx.Exec(ctx, `
				INSERT INTO competencies_yearly (employee_id, year, pillar_code, score)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (employee_id, year, pillar_code) DO NOTHING`,
				e.id, assessmentYear, code, score)
			if err != nil {
				return fmt.Errorf("competency %s/%s: %w", e.id, code, err)
			}
		}
	}

	return tx.Commit(ctx)
}
