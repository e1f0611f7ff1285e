package console

// Middleware wraps the handler of b. It receives the branch so wrappers can
// report which command they guard.
type Middleware func(b *Branch, next Handler) Handler

// ApplyMiddlewares wraps h with any number of middlewares, first one innermost.
func ApplyMiddlewares(b *Branch, h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(b, h)
	}
	return h
}

// Use wraps the current handler of b. Branches without a handler are left
// alone.
func (b *Branch) Use(mws ...Middleware) {
	if b.Handler == nil {
		return
	}
	b.Handler = ApplyMiddlewares(b, b.Handler, mws...)
}
