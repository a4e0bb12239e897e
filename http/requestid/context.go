package requestid

import "github.com/alextanhongpin/gcd/http/contextkey"

// Context holds the request id set by Handler.
var Context contextkey.Key[string] = "request_id"
