package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-contact-book/models"
)

const (
	createUser = `INSERT INTO users (username, password, name, token)
    VALUES ($1, $2, $3, $4)
    RETURNING username, password, name, token;`

	findUserByUsername = `SELECT username, password, name, token
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT username, password, name, token
    FROM users
    WHERE token = $1;`

	updateUser = `UPDATE users
    SET password = $2, name = $3, token = $4
    WHERE username = $1
    RETURNING username, password, name, token;`

	createContact = `INSERT INTO contacts (username, first_name, last_name, email, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, first_name, last_name, email, phone;`

	findContact = `SELECT id, username, first_name, last_name, email, phone
    FROM contacts
    WHERE id = $1 AND username = $2;`

	updateContact = `UPDATE contacts
    SET first_name = $3, last_name = $4, email = $5, phone = $6
    WHERE id = $1 AND username = $2
    RETURNING id, username, first_name, last_name, email, phone;`

	deleteContact = `DELETE FROM contacts
    WHERE id = $1 AND username = $2;`

	createAddress = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, contact_id, street, city, province, country, postal_code;`

	findAddress = `SELECT id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE id = $1 AND contact_id = $2;`

	updateAddress = `UPDATE addresses
    SET street = $3, city = $4, province = $5, country = $6, postal_code = $7
    WHERE id = $1 AND contact_id = $2
    RETURNING id, contact_id, street, city, province, country, postal_code;`

	deleteAddress = `DELETE FROM addresses
    WHERE id = $1 AND contact_id = $2;`

	listAddresses = `SELECT id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE contact_id = $1
    ORDER BY id;`
)

// likeEscaper neutralizes the LIKE metacharacters in user-supplied filter
// text so a literal % or _ matches itself instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps escaped filter text in the substring-match wildcards.
func likePattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}

// likeTerm builds one "column LIKE pattern" term with an explicit ESCAPE
// clause matching the backslash escaping of likePattern.
func likeTerm(column, pattern string) sq.Sqlizer {
	return sq.Expr(column+` LIKE ? ESCAPE '\'`, pattern)
}

// contactSearchConditions builds the WHERE conjunction of a contact search:
// the owner filter always applies; each supplied substring filter adds one
// AND term. The name filter matches either name component.
func contactSearchConditions(username string, search models.SearchContactRequest) sq.And {
	conditions := sq.And{sq.Eq{"username": username}}

	if search.Name != "" {
		pattern := likePattern(search.Name)
		conditions = append(conditions, sq.Or{
			likeTerm("first_name", pattern),
			likeTerm("last_name", pattern),
		})
	}

	if search.Email != "" {
		conditions = append(conditions, likeTerm("email", likePattern(search.Email)))
	}

	if search.Phone != "" {
		conditions = append(conditions, likeTerm("phone", likePattern(search.Phone)))
	}

	return conditions
}

// buildSearchContactsQuery produces the paginated SELECT of a contact search.
// Pagination follows skip = (page-1)*size, take = size.
func buildSearchContactsQuery(username string, search models.SearchContactRequest) (string, []any, error) {
	query, args, err := sq.
		Select("id", "username", "first_name", "last_name", "email", "phone").
		From("contacts").
		Where(contactSearchConditions(username, search)).
		OrderBy("id").
		Limit(uint64(search.Size)).
		Offset(uint64((search.Page - 1) * search.Size)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountContactsQuery produces the COUNT twin of the search SELECT,
// sharing its filter set but not its pagination.
func buildCountContactsQuery(username string, search models.SearchContactRequest) (string, []any, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From("contacts").
		Where(contactSearchConditions(username, search)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
