package response

import "recarma/internal/usecase/queries"

type PickupResponse = queries.PickupView
