package postgres

// SQL for the sales ledger and catalog. Line items carry the sale timestamp so
// the (id_sale, sale_datetime) foreign key resolves to a single partition.

const (
	// queryInsertSale lets the ledger sequence assign the id.
	// Fails with a check violation when no monthly partition covers $2.
	queryInsertSale = `
		INSERT INTO sales (id_user, datetime)
		VALUES ($1, $2)
		RETURNING id
	`

	queryInsertLineItem = `
		INSERT INTO product_sales (id_sale, sale_datetime, id_product)
		VALUES ($1, $2, $3)
	`

	queryCountSales = `
		SELECT COUNT(*)
		FROM sales
		WHERE datetime >= $1
		  AND datetime < $2
	`

	// querySalesByUser returns one row per sale with its product ids in line item order.
	querySalesByUser = `
		SELECT
			s.id,
			s.id_user,
			s.datetime,
			COALESCE(
				array_agg(ps.id_product ORDER BY ps.id) FILTER (WHERE ps.id_product IS NOT NULL),
				'{}'
			) AS product_ids
		FROM sales s
		LEFT JOIN product_sales ps
		  ON ps.id_sale = s.id
		 AND ps.sale_datetime = s.datetime
		WHERE s.id_user = $1
		  AND s.datetime >= $2
		  AND s.datetime < $3
		GROUP BY s.id, s.id_user, s.datetime
		ORDER BY s.datetime DESC, s.id DESC
		LIMIT $4
	`

	queryLedgerBounds = `SELECT MIN(datetime), MAX(datetime) FROM sales`

	// Catalog upserts are keyed by natural key. Users and categories are
	// immutable, so a conflict only re-reads the existing id.
	queryUpsertUser = `
		INSERT INTO users (name, national_id)
		VALUES ($1, $2)
		ON CONFLICT (national_id) DO UPDATE SET national_id = users.national_id
		RETURNING id, name
	`

	queryUpsertCategory = `
		INSERT INTO category (description)
		VALUES ($1)
		ON CONFLICT (description) DO UPDATE SET description = category.description
		RETURNING id
	`

	queryUpsertProduct = `
		INSERT INTO product (id_category, description, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (description) DO UPDATE SET
			id_category = EXCLUDED.id_category,
			price       = EXCLUDED.price
		RETURNING id
	`
)
