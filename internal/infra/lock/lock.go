package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired indica que outro pedido segura o lock do barbeiro.
var ErrNotAcquired = errors.New("lock: not acquired")

// Locker serializa a janela crítica do commit de agendamento por
// barbeiro (revalidação + insert). Release recebe o token devolvido
// por Acquire para nunca soltar lock de outro dono.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Release(ctx context.Context, key string, token string) error
}
