package store

const (
	createUser = `INSERT INTO users (id, username, password_hash, email)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, password_hash, email, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, email, created_at
    FROM users
    WHERE username = $1;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, expires_at, created_at;`

	findSessionWithUser = `SELECT s.id, s.user_id, s.expires_at, s.created_at,
        u.id, u.username, u.password_hash, u.email, u.created_at
    FROM sessions s
    JOIN users u ON u.id = s.user_id
    WHERE s.id = $1;`

	updateSessionExpiry = `UPDATE sessions
    SET expires_at = $2
    WHERE id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE id = $1;`

	listTasks = `SELECT id, title, description, completed, created_at, user_id
    FROM tasks
    WHERE user_id = $1
    ORDER BY id;`

	createTask = `INSERT INTO tasks (title, description, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, title, description, completed, created_at, user_id;`

	getTask = `SELECT id, title, description, completed, created_at, user_id
    FROM tasks
    WHERE id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE id = $1 AND user_id = $2;`
)
