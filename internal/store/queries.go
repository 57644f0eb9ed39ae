package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			vin, condition, make, model, year, mileage, color,
			price, latitude, longitude, owner_id, created_at, updated_at
		) VALUES (
			@vin, @condition, @make, @model, @year, @mileage, @color,
			@price, @latitude, @longitude, @owner_id, now(), now()
		)
		ON CONFLICT (vin) DO UPDATE SET
			mileage = EXCLUDED.mileage,
			color = EXCLUDED.color,
			price = EXCLUDED.price,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = now()
		RETURNING id, views, favorites, sold, sold_at, created_at, updated_at`

	queryGetListing = baseListingsSelect + `
		WHERE id = $1`

	queryListListingsByIDs = baseListingsSelect + `
		WHERE id = ANY($1::uuid[])`

	queryMarkListingSold = `
		UPDATE listings SET
			sold = true,
			sold_at = $2,
			updated_at = now()
		WHERE id = $1 AND sold = false
		RETURNING ` + listingColumns
)

// Seller history queries.
const (
	queryListSellerSoldListings = baseListingsSelect + `
		WHERE owner_id = $1 AND sold = true
		ORDER BY sold_at DESC`

	queryMarketAvgDaysOnMarket = `
		SELECT l.condition, g.make, g.model,
			AVG(EXTRACT(EPOCH FROM (l.sold_at - l.created_at)) / 86400.0)
		FROM listings l
		JOIN unnest($2::text[], $3::text[], $4::text[]) AS g(condition, make, model)
			ON l.condition = g.condition
			AND lower(l.make) = lower(g.make)
			AND lower(l.model) = lower(g.model)
		WHERE l.sold = true
			AND (l.owner_id IS NULL OR l.owner_id <> $1)
		GROUP BY l.condition, g.make, g.model`
)

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (email, zip, latitude, longitude)
		VALUES (@email, @zip, @latitude, @longitude)
		RETURNING id, created_at`

	queryGetUser = `
		SELECT id, email, zip, latitude, longitude, created_at
		FROM users
		WHERE id = $1`

	queryListActiveUsers = `
		SELECT user_id
		FROM listing_visits
		WHERE last_visited_at >= $1
		GROUP BY user_id
		ORDER BY MAX(last_visited_at) DESC
		LIMIT $2`
)

// Engagement queries.
const (
	queryUpsertVisit = `
		INSERT INTO listing_visits (user_id, listing_id, clicks, dwell_seconds, last_visited_at)
		VALUES (@user_id, @listing_id, @clicks, @dwell_seconds, @last_visited_at)
		ON CONFLICT (user_id, listing_id) DO UPDATE SET
			clicks = listing_visits.clicks + EXCLUDED.clicks,
			dwell_seconds = listing_visits.dwell_seconds + EXCLUDED.dwell_seconds,
			last_visited_at = GREATEST(listing_visits.last_visited_at, EXCLUDED.last_visited_at)
		RETURNING clicks, dwell_seconds, last_visited_at`

	queryIncrementViews = `
		UPDATE listings SET views = views + 1
		WHERE id = $1`

	queryGetVisit = `
		SELECT user_id, listing_id, clicks, dwell_seconds, last_visited_at
		FROM listing_visits
		WHERE user_id = $1 AND listing_id = $2`

	queryInsertFavorite = `
		INSERT INTO favorites (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING`

	queryDeleteFavorite = `
		DELETE FROM favorites
		WHERE user_id = $1 AND listing_id = $2`

	queryAdjustFavorites = `
		UPDATE listings SET favorites = GREATEST(favorites + $2, 0)
		WHERE id = $1`

	queryIsFavorited = `
		SELECT EXISTS(
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND listing_id = $2
		)`

	queryCreateMessage = `
		INSERT INTO messages (listing_id, sender_id, receiver_id, body)
		VALUES (@listing_id, @sender_id, @receiver_id, @body)
		RETURNING id, created_at`

	queryCountMessagesExcludingOwner = `
		SELECT COUNT(*)
		FROM messages m
		JOIN listings l ON l.id = m.listing_id
		WHERE m.listing_id = $1
			AND (l.owner_id IS NULL OR m.sender_id <> l.owner_id)`

	queryHasMessagedSeller = `
		SELECT EXISTS(
			SELECT 1
			FROM messages m
			JOIN listings l ON l.id = m.listing_id
			WHERE m.listing_id = $2
				AND m.sender_id = $1
				AND m.receiver_id = l.owner_id
		)`
)

// Preference queries.
const (
	queryUpsertPreference = `
		INSERT INTO search_preferences (user_id, kind, filter, filter_key, created_at)
		VALUES (@user_id, @kind, @filter, @filter_key, @created_at)
		ON CONFLICT (user_id, kind, filter_key) DO UPDATE SET
			created_at = EXCLUDED.created_at
		RETURNING id, created_at`

	queryEvictViewedPreferences = `
		DELETE FROM search_preferences
		WHERE id IN (
			SELECT id FROM search_preferences
			WHERE user_id = $1 AND kind = 'viewed'
			ORDER BY created_at DESC, id DESC
			OFFSET $2
		)`

	queryListPreferences = `
		SELECT id, user_id, kind, filter, created_at
		FROM search_preferences
		WHERE user_id = $1
		ORDER BY kind, created_at DESC`
)

// Recommendation candidate queries.
const (
	queryListRecentlyVisited = `
		SELECT l.id, l.vin, l.condition, l.make, l.model, l.year, l.mileage, l.color,
			l.price, l.latitude, l.longitude, l.owner_id, l.views, l.favorites,
			l.sold, l.sold_at, l.created_at, l.updated_at
		FROM listing_visits v
		JOIN listings l ON l.id = v.listing_id
		WHERE v.user_id = $1
			AND l.sold = false
			AND (l.owner_id IS NULL OR l.owner_id <> $1)
		ORDER BY v.last_visited_at DESC, l.id
		LIMIT $2`
)
