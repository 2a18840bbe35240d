package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres 错误码 23505: unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation 判断错误是否为唯一约束冲突
// 考勤的 (employee_id, date) 唯一索引依赖此判定识别并发重复打卡
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
