package model

import "fmt"

// Закрытые перечисления схемы. Храним строками, проверяем до записи в БД.

type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleUser        UserRole = "USER"
	RolePremiumUser UserRole = "PREMIUMUSER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RolePremiumUser:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentBill    DocumentType = "BILL"
	DocumentInvoice DocumentType = "INVOICE"
	DocumentReceipt DocumentType = "RECEIPT"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentBill, DocumentInvoice, DocumentReceipt:
		return true
	}
	return false
}

type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelError LogLevel = "ERROR"
	LevelDebug LogLevel = "DEBUG"
)

func (l LogLevel) Valid() bool {
	switch l {
	case LevelInfo, LevelError, LevelDebug:
		return true
	}
	return false
}

// ErrInvalidEnum возвращается при попытке записать значение вне перечисления.
type ErrInvalidEnum struct {
	Field string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}
