// Package pkg, projede paylaşılan küçük utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error'lar sabit değer olarak tanımlanır, karşılaştırma errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Service katmanı bu error'ları fmt.Errorf("%w: detay") ile sarıp döner,
// handler katmanı pkg.Error ile HTTP status code'una çevirir.
package pkg

import "errors"

// Domain-level error'lar.
//
// ErrUnauthorized kasıtlı olarak tek bir kategoridir: oturum yok, oturum
// süresi dolmuş veya kullanıcı deaktive edilmiş — dışarıya hepsi aynı
// görünür. Hangi durumun gerçekleştiği response'tan anlaşılamamalıdır
// (hesap varlığı bilgisi sızdırmamak için).
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
