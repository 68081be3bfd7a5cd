package cache

const (
	CacheVersion           = "v1"
	SessionRelayKeyPattern = CacheVersion + ":session:relay:%s"
	UserProfileKeyPattern  = CacheVersion + ":user:profile:%s"
	UltraActiveKeyPattern  = CacheVersion + ":user:ultra:%d"
	MasterSolverTokenKey   = CacheVersion + ":solver:master"
	SlotCooldownKeyPattern = CacheVersion + ":slot:cooldown:%s"
	SlotLockKeyPattern     = CacheVersion + ":slot:lock:%s"
)
