// Package repository, veritabanı erişim katmanıdır.
//
// Her entity için bir interface (X_repository.go) ve onun SQLite
// implementasyonu (sqlite_X.go) vardır. Service katmanı sadece
// interface'leri görür — testlerde fake repository geçirilebilir.
package repository

import (
	"encoding/json"
	"strings"
)

// isUniqueViolation, SQLite'ın UNIQUE constraint hatasını tanır.
// database/sql driver'dan typed error gelmez — mesaj kontrolü gerekir.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// marshalList, []string'i DB'ye yazılacak JSON TEXT'e çevirir.
// nil liste '[]' olarak yazılır — DB'de NULL liste istemiyoruz.
func marshalList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalList, DB'deki JSON TEXT'i []string'e çevirir.
// Bozuk veri boş liste olarak okunur, hata yaymaz.
func unmarshalList(raw string) []string {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

// rawOrNil, json.RawMessage'ı nullable DB değerine çevirir.
func rawOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// nilOrRaw, nullable DB değerini json.RawMessage'a çevirir.
func nilOrRaw(s *string) json.RawMessage {
	if s == nil || *s == "" {
		return nil
	}
	return json.RawMessage(*s)
}
