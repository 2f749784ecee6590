package client

// Request describes one logical API call. Body, when non-nil, is marshaled
// to JSON once and replayed byte-identical on the post-refresh retry.
type Request struct {
	Method string
	Path   string
	Body   any

	// NoAuth skips the Authorization header and the 401 refresh dance.
	// Used for public catalog reads and the auth endpoints themselves.
	NoAuth bool
}

// Get builds an authenticated GET request.
func Get(path string) Request {
	return Request{Method: "GET", Path: path}
}

// Post builds an authenticated POST request.
func Post(path string, body any) Request {
	return Request{Method: "POST", Path: path, Body: body}
}

// Put builds an authenticated PUT request.
func Put(path string, body any) Request {
	return Request{Method: "PUT", Path: path, Body: body}
}

// Delete builds an authenticated DELETE request.
func Delete(path string) Request {
	return Request{Method: "DELETE", Path: path}
}

// Public marks the request as unauthenticated.
func (r Request) Public() Request {
	r.NoAuth = true
	return r
}
