package postgres

const hotelColumns = `
  id, name, description, location, city, address,
  rating, stars, image_url, amenities, review_count, approved`

const getHotelSQL = `SELECT` + hotelColumns + `
FROM hotels
WHERE id = $1`

const listAllHotelsSQL = `SELECT` + hotelColumns + `
FROM hotels
ORDER BY seq`

const insertHotelSQL = `
INSERT INTO hotels
  (id, name, description, location, city, address, rating, stars, image_url, amenities, review_count, approved)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const approveHotelSQL = `
UPDATE hotels
SET approved = TRUE
WHERE id = $1
RETURNING` + hotelColumns

const roomColumns = `
  id, hotel_id, room_type, description, price, capacity, available, image_url, amenities`

const getRoomSQL = `SELECT` + roomColumns + `
FROM rooms
WHERE id = $1`

const roomsForHotelSQL = `SELECT` + roomColumns + `
FROM rooms
WHERE hotel_id = $1
ORDER BY seq`

const insertRoomSQL = `
INSERT INTO rooms
  (id, hotel_id, room_type, description, price, capacity, available, image_url, amenities)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const bookingColumns = `
  id, user_id, room_id, hotel_id, check_in_date, check_out_date,
  guests, total_price, status, payment_status, payment_ref, created_at`

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, room_id, hotel_id, check_in_date, check_out_date, guests, total_price, status, payment_status, payment_ref, created_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const getBookingSQL = `SELECT` + bookingColumns + `
FROM bookings
WHERE id = $1`

const getBookingForUpdateSQL = getBookingSQL + `
FOR UPDATE`

const listBookingsByUserSQL = `SELECT` + bookingColumns + `
FROM bookings
WHERE user_id = $1
ORDER BY created_at, id`

const updateBookingStateSQL = `
UPDATE bookings
SET status = $2, payment_status = $3, payment_ref = $4
WHERE id = $1`

// The overlap test treats stays as half-open ranges [check_in, check_out).
const activeOverlapExistsSQL = `
SELECT EXISTS (
  SELECT 1
  FROM bookings
  WHERE room_id = $1
    AND status <> 'cancelled'
    AND check_in_date < $3
    AND check_out_date > $2
)`

const insertPaymentSQL = `
INSERT INTO payments (id, booking_id, user_id, amount, method, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertReviewSQL = `
INSERT INTO reviews (id, user_id, hotel_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// Refreshes the derived aggregate from the persisted reviews; runs in the
// same transaction as the review insert.
const refreshHotelReviewStatsSQL = `
UPDATE hotels
SET review_count = stats.cnt,
    rating       = stats.avg_rating
FROM (
  SELECT count(*) AS cnt, avg(rating)::double precision AS avg_rating
  FROM reviews
  WHERE hotel_id = $1
) AS stats
WHERE hotels.id = $1`

const listReviewsByHotelSQL = `
SELECT id, user_id, hotel_id, rating, comment, created_at
FROM reviews
WHERE hotel_id = $1
ORDER BY created_at, id`

const userColumns = `
  id, username, email, password_hash, full_name, phone_number, is_admin`

const insertUserSQL = `
INSERT INTO users (id, username, email, password_hash, full_name, phone_number, is_admin)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getUserByIDSQL = `SELECT` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmailSQL = `SELECT` + userColumns + `
FROM users
WHERE lower(email) = lower($1)`

const getUserByUsernameSQL = `SELECT` + userColumns + `
FROM users
WHERE username = $1`
