package kernel

// Params is one micromagnetic core-shell parameter set in kernel units:
// lengths in [Å], SLDs in [1e-6 Å^-2], fields in [T], exchange stiffness
// in [1e-12 J/m], DMI constant in [1e-3 J/m^2], angles in [deg].
type Params struct {
	Radius     float64 // core radius [Å]
	Thickness  float64 // shell thickness [Å]
	NucCore    float64 // nuclear SLD of the core [1e-6 Å^-2]
	NucShell   float64
	NucSolvent float64
	MagCore    float64 // magnetic SLD of the core [1e-6 Å^-2]
	MagShell   float64
	MagSolvent float64
	HkCore     float64 // anisotropy field amplitude of the core [T]
	HiField    float64 // internal field [T]
	MSat       float64 // saturation magnetisation mu0*Ms [T]
	ExchangeA  float64 // exchange stiffness [1e-12 J/m]
	DMI        float64 // DMI constant [1e-3 J/m^2]
	UpI        float64 // incident polarisation efficiency
	UpF        float64 // final polarisation efficiency
	Alpha      float64 // sample orientation [deg]
	Beta       float64 // sample orientation [deg]
}
