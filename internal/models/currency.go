package models

// Currency is a row of the currencies table.
type Currency struct {
	ID       int64  `db:"id"`
	Code     string `db:"code"`
	FullName string `db:"full_name"`
	Sign     string `db:"sign"`
}
