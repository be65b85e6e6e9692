package response

import "fmt"

const FaviconDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAEAAAABACAYAAACqaXHeAAAABmJLR0QA/wD/AP+gvaeTAAAD2klEQVR4nO2aTWgUSRiGn5qejFkyHvxbNWYXUdSoYffgydV4cHYPi+BJT/4gCEERLyqoJ0UvgrgLK+zqKZBrQMRLRInsEl3ZUw4Je/NkImgSPSma2P15mBnS6cxPV1d1Twf7hT5UVVd9b79dX1W/3Q0ZMmTIkOHrhdLtsPOqFN6/4brkOIawPg5SAbwTeOAVODfxu3pre3BtATadkRsIF20TCYFx5VF6cUe9sTmotgBbTskk0Onl2PPiT/WvTTJ14omvOO5hV4ScbgdH6HQEkrj4SrzqMe4IPW3C8OZT8q2t8aMIgCPNz7OFarxvZtnvCGOO0NPu8c/2PrGy/mgLkPfKR1KoxhvtV1OFOUp5j7G8R3fB48kuCyIsmRkAZRFyLiUHxhyhWz6bi6AvgFc+kkIw3mi/mhKXkuOVRcjNmYmwpGZAFaP9aqodSpU1obttlie7jkYTYSkI8MoR2Htc9vrrR8rp8HNld+hud3i0+6Ss1B0/r00owelfiTcAXAJG9h2rofw8nx7nE78BJ3TG1xYgn+DdB1j7kSsz7YBwHOhscvpB3fH1Z0DCAgwOqlngcuWoi1+OiAArdMdPfQqERVReqZ8BYRGVVywCnH8uZxH+AEB4emuP6q22XXgmB0RxF9hQqZpA0XdrtxoK027CqxZiSYGOOVDzPnPB9tXhcYf5iwPoUnAX+D5MuwmvWohlF7i2T90Gbt/8WxadXXTpAnAKrPr4AdWWZxr4Lmy7Ca+a/XQ76ChddOvXnf6p/Hbnr2HRarfBy49YF8FGAkQt2+DlR6wCLK9xV4J1umUbvPxoWQpELdvg5UfLUuC/e7IKQOpccL12G7z8aIUAE0AXimkAyue8DNtug5cfsb4SK7rMFF1mFtR9pq/oMlF0ywItd3nZIfSFbbfBa0E/3Q46Sm88pFYvqjushmiwrzdrt8HLj8wLaAfK3GC480xNTyNDZcIriNhmgKnpaWSoTHgFEdsrMVPT08hQmfBa1E+3Q9ipZsv0pM8LhH8GMCo3q4/KK4jYZoAt05M+M6SZAlHLzeqj8goi9hQwNT2pSwGNXcCK6QkrQNRdILZvg7ZMTy1DZcIriNhSwJbpqWWoTHgFkZkh7UCZGYoWKG4kNgOS/jweFqn8MJIkshRI+jng3o/S1KMnhcEfpLcVzwEj93tSMh0M0tIkBV4Da6OHtorIXCLvAr/+r9ZFCRgXhnaEe3MURJQ/RV85Hjzemp414OEO6a38UTqp21c/BWAA4RKKkeFtKVkDKo5RhAHdrtoCrHO4Mj0HEu6/vaQwiTCwZhlXW00kQ4YMGTIsJXwBYqXyAwsO2h0AAAAASUVORK5CYII="

// Favicon returns the <link> element that references the inline icon.
func Favicon() string {
	return fmt.Sprintf("<link rel=\"icon\" href=\"%s\">", FaviconDataURI)
}
