package listing

import (
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
)

const (
	DefaultDebounce = 400 * time.Millisecond
	DefaultLimit    = 10
)

type options struct {
	mode     Mode
	debounce time.Duration
	limit    int
	status   string
	notifier Notifier
	log      logging.Logger
	onChange func()
}

type Option func(*options)

func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

func WithDebounce(d time.Duration) Option { return func(o *options) { o.debounce = d } }

func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// WithStatus sets the initial status filter.
func WithStatus(s string) Option { return func(o *options) { o.status = s } }

func WithNotifier(n Notifier) Option { return func(o *options) { o.notifier = n } }

func WithLogger(l logging.Logger) Option { return func(o *options) { o.log = l } }

// WithOnChange registers a callback run after every state change. It is
// called without the pipeline lock held, so it may call Snapshot.
func WithOnChange(fn func()) Option { return func(o *options) { o.onChange = fn } }
