package planck

// Radiation constants for wavelengths in microns.
const (
	// C1 is the first radiation constant [W um^4 / m^2].
	C1 = 3.74151e8

	// C2 is the second radiation constant [um K].
	C2 = 1.43879e4

	// WienDisplacement is Wien's displacement constant [um K].
	WienDisplacement = 2897.771955
)
