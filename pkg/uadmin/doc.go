// Package uadmin provides types, interfaces, and helpers for working
// with a user-management REST API from an administrative client.
//
// # Overview
//
// The uadmin package defines the domain types (User, Role, AuditLog),
// the resource client interfaces (UsersClient, RolesClient,
// AuditLogsClient), the response envelopes used by every endpoint, and
// the Controller that owns the state of a paginated, filtered user
// list. A concrete implementation of the clients is provided by the
// uaclient package, which wires configuration and transport. Most
// consumers should import uaclient to construct a client and then work
// with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/humas-io/uadmin/pkg/uadmin"
//	  "github.com/humas-io/uadmin/pkg/uaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := uaclient.New(&uadmin.Config{APIEndpoint: "https://api.example.com/api"})
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, uadmin.NewListQuery())
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Envelopes and pagination
//
// Every endpoint responds with a {status, message, data} envelope;
// DecodeEnvelope normalizes it, converting payload decode failures into
// error envelopes instead of faults. List endpoints additionally carry
// pagination metadata, either at the top level or nested under a
// "pagination" object; DecodePage resolves each field independently
// with top-level precedence and applies the PageDefaults policy to
// whatever is missing. Navigation flags are always derived from the
// resolved page numbers, never read off the wire.
//
// # The controller
//
// Controller tracks the current page, the selected detail record, the
// in-flight flag, and the last failure message for a list view. Every
// successful mutation replays the last issued query verbatim, so the
// view stays on the page and filters the operator was looking at.
// Subscribe registers change callbacks for interactive consumers.
//
// # Errors
//
// API failures are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common
// cases. The controller converts every fault into its error-message
// state; nothing escapes it as a panic or raw error string.
package uadmin
