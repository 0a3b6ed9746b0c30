package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// If the bookings connection ever needs to be broken up a new function
// should be introduced, example: NotificationsClient()

type Factory struct {
	bookingsStore *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("BOOKINGS_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		bookingsStore: redis.NewClient(opt),
	}
}

func (f *Factory) BookingsClient() *redis.Client {
	return f.bookingsStore
}
