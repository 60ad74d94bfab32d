package advisory

// BlockedSet holds the recommendation categories suppressed for the current
// evaluation cycle. It is derived purely from the active alerts and never
// persisted.
type BlockedSet map[RecommendationType]bool

// ResolveBlocked maps active alerts to the recommendation categories they
// make unsafe. Blocking is additive: the result is the union over all
// matching alerts, and no alerts means nothing is blocked.
func ResolveBlocked(alerts []Alert) BlockedSet {
	blocked := make(BlockedSet)
	for _, a := range alerts {
		switch a.Type {
		case AlertFrost, AlertFrostWarning, AlertStrongWind, AlertExtremeWind:
			blocked[RecommendationSpray] = true
			blocked[RecommendationWatering] = true
		case AlertExtremeHeat, AlertSevereHeat, AlertModerateWind:
			blocked[RecommendationSpray] = true
		}
	}
	return blocked
}
