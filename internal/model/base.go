package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ── PostgreSQL TEXT[] 커스텀 타입 ──

// StringArray PostgreSQL TEXT[] 대응 타입, GORM Scanner/Valuer 구현.
// 탐구 키워드처럼 짧은 태그 목록 저장에 사용한다.
type StringArray []string

// Scan PostgreSQL {a,b,c} 텍스트를 []string 으로 파싱
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*a = StringArray{}
		return nil
	}
	parts := splitArrayElements(s)
	arr := make(StringArray, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		// 따옴표로 감싼 요소 복원
		if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
			p = strings.ReplaceAll(p[1:len(p)-1], `\"`, `"`)
			p = strings.ReplaceAll(p, `\\`, `\`)
		}
		arr = append(arr, p)
	}
	*a = arr
	return nil
}

// Value []string 을 PostgreSQL {a,b,c} 텍스트로 직렬화
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	parts := make([]string, len(a))
	for i, s := range a {
		escaped := strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		parts[i] = `"` + escaped + `"`
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// splitArrayElements 따옴표 내부의 쉼표를 무시하며 배열 요소 분리
func splitArrayElements(s string) []string {
	var parts []string
	var buf strings.Builder
	inQuote := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			buf.WriteRune(r)
			escaped = false
		case r == '\\':
			buf.WriteRune(r)
			escaped = true
		case r == '"':
			buf.WriteRune(r)
			inQuote = !inQuote
		case r == ',' && !inQuote:
			parts = append(parts, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// BaseModel 공통 감사 필드 (모든 비즈니스 모델에 임베드)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
