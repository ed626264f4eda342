package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// employeeQuery joins the directory with its dimension and assessment tables.
// Competency scores come from the employee's latest assessment year, pivoted
// by pillar code; the strengths join keeps only the rank-1 theme.
const employeeQuery = `
	SELECT e.employee_id, e.fullname,
		p.name, g.name, d.name,
		e.tenure_months, e.education, e.major,
		pp.mbti, pp.disc, pp.iq, pp.gtq, pp.pauli,
		st.theme, st.domain,
		py.rating,
		cy.sea, cy.qdd, cy.ftc, cy.ids, cy.vcu, cy.sto_lie, cy.csi, cy.cex_gdr
	FROM employees e
	LEFT JOIN dim_positions p ON e.position_id = p.position_id
	LEFT JOIN dim_grades g ON e.grade_id = g.grade_id
	LEFT JOIN dim_directorates d ON e.directorate_id = d.directorate_id
	LEFT JOIN profiles_psych pp ON e.employee_id = pp.employee_id
	LEFT JOIN LATERAL (
		SELECT theme, domain FROM strengths
		WHERE employee_id = e.employee_id ORDER BY rank ASC LIMIT 1
	) st ON true
	LEFT JOIN LATERAL (
		SELECT rating FROM performance_yearly
		WHERE employee_id = e.employee_id ORDER BY year DESC LIMIT 1
	) py ON true
	LEFT JOIN LATERAL (
		SELECT
			MAX(score) FILTER (WHERE pillar_code = 'SEA')     AS sea,
			MAX(score) FILTER (WHERE pillar_code = 'QDD')     AS qdd,
			MAX(score) FILTER (WHERE pillar_code = 'FTC')     AS ftc,
			MAX(score) FILTER (WHERE pillar_code = 'IDS')     AS ids,
			MAX(score) FILTER (WHERE pillar_code = 'VCU')     AS vcu,
			MAX(score) FILTER (WHERE pillar_code = 'STO_LIE') AS sto_lie,
			MAX(score) FILTER (WHERE pillar_code = 'CSI')     AS csi,
			MAX(score) FILTER (WHERE pillar_code = 'CEX_GDR') AS cex_gdr
		FROM competencies_yearly c
		WHERE c.employee_id = e.employee_id
		  AND c.year = (SELECT MAX(year) FROM competencies_yearly WHERE employee_id = e.employee_id)
	) cy ON true`

func (s *PostgresStore) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*Employee, error) {
	query := employeeQuery + ` WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Role != "" {
		n++
		query += fmt.Sprintf(" AND p.name = $%d", n)
		args = append(args, filter.Role)
	}
	if filter.Grade != "" {
		n++
		query += fmt.Sprintf(" AND g.name = $%d", n)
		args = append(args, filter.Grade)
	}
	if filter.MinRating > 0 {
		n++
		query += fmt.Sprintf(" AND py.rating >= $%d", n)
		args = append(args, filter.MinRating)
	}

	query += " ORDER BY e.fullname ASC, e.employee_id ASC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func (s *PostgresStore) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	rows, err := s.pool.Query(ctx, employeeQuery+` WHERE e.employee_id = $1`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emps, err := scanEmployees(rows)
	if err != nil {
		return nil, err
	}
	if len(emps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, employeeID)
	}
	return emps[0], nil
}

func (s *PostgresStore) GetDirectoryStats(ctx context.Context) (*DirectoryStats, error) {
	stats := &DirectoryStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(pp.employee_id),
			(SELECT COUNT(DISTINCT employee_id) FROM competencies_yearly),
			(SELECT COUNT(DISTINCT employee_id) FROM strengths),
			COALESCE(AVG(e.tenure_months), 0)
		FROM employees e
		LEFT JOIN profiles_psych pp ON e.employee_id = pp.employee_id`,
	).Scan(&stats.TotalEmployees, &stats.WithPsychometric, &stats.WithCompetencies,
		&stats.WithStrengths, &stats.AvgTenureMonths)
	return stats, err
}

func scanEmployees(rows pgx.Rows) ([]*Employee, error) {
	var emps []*Employee
	for rows.Next() {
		e := &Employee{}
		var role, grade, directorate sql.NullString
		comps := make([]*float64, len(CompetencyCodes))
		dest := []interface{}{
			&e.EmployeeID, &e.FullName,
			&role, &grade, &directorate,
			&e.TenureMonths, &e.Education, &e.Major,
			&e.MBTI, &e.DISC, &e.IQ, &e.GTQ, &e.Pauli,
			&e.DominantStrength, &e.StrengthDomain,
			&e.PerformanceRating,
		}
		for i := range comps {
			dest = append(dest, &comps[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if role.Valid {
			e.Role = role.String
		}
		if grade.Valid {
			e.Grade = grade.String
		}
		if directorate.Valid {
			e.Directorate = directorate.String
		}
		e.Competencies = make(map[string]*float64, len(CompetencyCodes))
		for i, code := range CompetencyCodes {
			e.Competencies[code] = comps[i]
		}
		emps = append(emps, e)
	}
	return emps, rows.Err()
}
