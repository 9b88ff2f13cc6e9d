package user

const expandedColumns = `
		SELECT u.id, u.username, u.email, u.password_hash, u.name, u.last_name, u.is_militar, u.is_temporal, u.time_create, u.email_verified,
		       d.document, d.type_document_id, d.place_expedition, d.date_expedition, td.name_type_document,
		       c.address, c.city, c.phone, c.cell_phone, c.emergency_name, c.emergency_phone, c.country_id, co.country_code, co.country_name
		FROM app_users u
		LEFT JOIN user_documents d ON d.user_id = u.id
		LEFT JOIN type_documents td ON td.id = d.type_document_id
		LEFT JOIN contact_infos c ON c.user_id = u.id
		LEFT JOIN countries co ON co.id = c.country_id`

const (
	SelectUserByUsernameOrEmail = `
		SELECT id, username, email, password_hash, name, last_name, is_militar, is_temporal, time_create, email_verified
		FROM app_users
		WHERE username = $1 OR email = $2
		LIMIT 1
	`
	SelectUsersExpanded = expandedColumns + `
		ORDER BY u.id
	`
	SelectUserByEmailExpanded = expandedColumns + `
		WHERE u.email = $1
	`
	InsertUser = `
		INSERT INTO app_users (username, email, password_hash, name, last_name, is_militar, is_temporal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, username, email, password_hash, name, last_name, is_militar, is_temporal, time_create, email_verified
	`
	InsertDocument = `
		INSERT INTO user_documents (user_id, document, type_document_id, place_expedition, date_expedition)
		VALUES ($1, $2, $3, $4, $5)
	`
	InsertContact = `
		INSERT INTO contact_infos (user_id, address, city, phone, cell_phone, emergency_name, emergency_phone, country_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	UpsertCountry = `
		INSERT INTO countries (id, country_code, country_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	UpsertTypeDocument = `
		INSERT INTO type_documents (id, name_type_document)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
)
