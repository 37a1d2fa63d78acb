package identity

import "errors"

var (
	// ErrEmptyToken is returned when a token-scope identity carries no token.
	ErrEmptyToken = errors.New("empty token identity")
	// ErrNilIdentifier is returned when a user or client identifier is nil.
	ErrNilIdentifier = errors.New("nil identifier")
)

// Kind defines a public type used by goRevoke APIs.
//
// Kind instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Kind uint8

const (
	// KindToken selects a single token by its raw string.
	KindToken Kind = iota
	// KindUser selects every token stamped with a user identifier.
	KindUser
	// KindClient selects every token stamped with a client identifier.
	KindClient
	// KindUserClient selects every token stamped with both identifiers.
	KindUserClient
)

// String returns the scope tag carried by revocation errors and audit events.
func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindUser:
		return "user"
	case KindClient:
		return "client"
	case KindUserClient:
		return "user-client"
	default:
		return "unknown"
	}
}

// Identity is a tagged scope selector. Construct values through [Token],
// [User], [Client], or [UserClient]; the zero value is a token-scope
// identity with an empty token and never derives a valid key.
type Identity struct {
	kind   Kind
	token  string
	user   any
	client any
}

// Token selects a single token by its raw compact form.
func Token(token string) Identity {
	return Identity{kind: KindToken, token: token}
}

// User selects every token stamped with the given user identifier.
func User(user any) Identity {
	return Identity{kind: KindUser, user: user}
}

// Client selects every token stamped with the given client identifier.
func Client(client any) Identity {
	return Identity{kind: KindClient, client: client}
}

// UserClient selects every token stamped with both identifiers.
func UserClient(user, client any) Identity {
	return Identity{kind: KindUserClient, user: user, client: client}
}

// Kind reports which scope the identity selects.
func (id Identity) Kind() Kind {
	return id.kind
}

const (
	userPrefix   = "user::"
	clientPrefix = "client::"
	pairJoin     = "::client::"
)

// Key derives the canonical store key for the identity.
//
// Token scope uses the raw token string. User and client scopes use
// distinct prefixes so identical raw identifiers never collide across
// scopes. The pair scope concatenates both canonical forms.
func (id Identity) Key() (string, error) {
	switch id.kind {
	case KindToken:
		if id.token == "" {
			return "", ErrEmptyToken
		}
		return id.token, nil
	case KindUser:
		user, err := Canonical(id.user)
		if err != nil {
			return "", err
		}
		return userPrefix + user, nil
	case KindClient:
		client, err := Canonical(id.client)
		if err != nil {
			return "", err
		}
		return clientPrefix + client, nil
	case KindUserClient:
		user, err := Canonical(id.user)
		if err != nil {
			return "", err
		}
		client, err := Canonical(id.client)
		if err != nil {
			return "", err
		}
		return userPrefix + user + pairJoin + client, nil
	default:
		return "", errors.New("unknown identity kind")
	}
}
